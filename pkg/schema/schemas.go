package schema

// Resource kinds the registry knows about.
const (
	KindDrivers = "drivers"
	KindClients = "clients"
	KindOrders  = "orders"
)

// The contracts are closed-world: a payload carrying any field that is not
// declared here is rejected. Length bounds mirror the column widths.
var documents = map[string]string{
	KindDrivers: `{
		"type": "object",
		"title": "New driver creation schema",
		"required": ["name", "car"],
		"additionalProperties": false,
		"properties": {
			"name": {
				"description": "Driver's name",
				"type": "string",
				"minLength": 1,
				"maxLength": 50
			},
			"car": {
				"description": "Driver's car",
				"type": "string",
				"minLength": 1,
				"maxLength": 50
			}
		}
	}`,
	KindClients: `{
		"type": "object",
		"title": "New client creation schema",
		"required": ["name", "is_vip"],
		"additionalProperties": false,
		"properties": {
			"name": {
				"description": "Client's name",
				"type": "string",
				"minLength": 1,
				"maxLength": 50
			},
			"is_vip": {
				"description": "Is client VIP?",
				"type": "boolean"
			}
		}
	}`,
	KindOrders: `{
		"type": "object",
		"title": "New order creation schema",
		"required": ["client_id", "driver_id", "date_created", "status", "address_from", "address_to"],
		"additionalProperties": false,
		"properties": {
			"client_id": {
				"description": "Client's identifier",
				"type": "integer"
			},
			"driver_id": {
				"description": "Driver's identifier",
				"type": "integer"
			},
			"address_from": {
				"description": "Starting address",
				"type": "string",
				"minLength": 1,
				"maxLength": 100
			},
			"address_to": {
				"description": "Destination address",
				"type": "string",
				"minLength": 1,
				"maxLength": 100
			},
			"date_created": {
				"description": "Date of order creation",
				"type": "string",
				"format": "date-time"
			},
			"status": {
				"description": "Order status",
				"type": "string",
				"enum": ["not_accepted", "in_progress", "done", "cancelled"]
			}
		}
	}`,
}
