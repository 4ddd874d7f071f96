package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestValidateAcceptsWellFormedPayloads(t *testing.T) {
	r := mustRegistry(t)

	cases := []struct {
		kind     string
		document string
	}{
		{KindDrivers, `{"name": "Ivan Ivanov", "car": "Honda Civic"}`},
		{KindClients, `{"name": "Ivan Ivanov", "is_vip": true}`},
		{KindClients, `{"name": "Petr Petrov", "is_vip": false}`},
		{KindOrders, `{
			"client_id": 1,
			"driver_id": 1,
			"date_created": "2021-08-23T06:31:08.716Z",
			"status": "not_accepted",
			"address_from": "Address",
			"address_to": "Another address"
		}`},
	}

	for _, tc := range cases {
		violation, err := r.Validate(tc.kind, []byte(tc.document))
		require.NoError(t, err)
		require.Nil(t, violation, "expected %s payload to pass: %s", tc.kind, tc.document)
	}
}

func TestValidateRejectsContractViolations(t *testing.T) {
	r := mustRegistry(t)

	longName := strings.Repeat("x", 51)

	cases := []struct {
		name     string
		kind     string
		document string
	}{
		{"missing required field", KindDrivers, `{"name": "Ivan Ivanov"}`},
		{"unknown field", KindDrivers, `{"name": "Ivan", "car": "Lada", "color": "red"}`},
		{"wrong type", KindDrivers, `{"name": 42, "car": "Lada"}`},
		{"empty string", KindDrivers, `{"name": "", "car": "Lada"}`},
		{"over-length string", KindDrivers, `{"name": "` + longName + `", "car": "Lada"}`},
		{"boolean as string", KindClients, `{"name": "Ivan", "is_vip": "yes"}`},
		{"fractional identifier", KindOrders, `{
			"client_id": 1.5,
			"driver_id": 1,
			"date_created": "2021-08-23T06:31:08.716Z",
			"status": "not_accepted",
			"address_from": "A",
			"address_to": "B"
		}`},
		{"unknown status", KindOrders, `{
			"client_id": 1,
			"driver_id": 1,
			"date_created": "2021-08-23T06:31:08.716Z",
			"status": "teleported",
			"address_from": "A",
			"address_to": "B"
		}`},
		{"unparsable timestamp", KindOrders, `{
			"client_id": 1,
			"driver_id": 1,
			"date_created": "yesterday",
			"status": "done",
			"address_from": "A",
			"address_to": "B"
		}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			violation, err := r.Validate(tc.kind, []byte(tc.document))
			require.NoError(t, err)
			require.NotNil(t, violation)
			require.NotEmpty(t, violation.Error())
		})
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	r := mustRegistry(t)
	document := []byte(`{"name": "Ivan", "car": "Lada", "color": "red"}`)

	first, err := r.Validate(KindDrivers, document)
	require.NoError(t, err)
	require.NotNil(t, first)

	for i := 0; i < 10; i++ {
		again, err := r.Validate(KindDrivers, document)
		require.NoError(t, err)
		require.NotNil(t, again)
		require.Equal(t, first.Error(), again.Error())
	}
}

func TestValidateUnknownKind(t *testing.T) {
	r := mustRegistry(t)
	_, err := r.Validate("spaceships", []byte(`{}`))
	require.Error(t, err)
}
