package generation

// SchemaType enumerates the JSON types a schema descriptor can declare.
type SchemaType string

// Supported schema types.
const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
)

// Schema is a provider-neutral descriptor of the JSON document a generation
// call must produce. Capability adapters translate it into their provider's
// structured-output format. Collection-length bounds and enum membership are
// additionally enforced by the validation layer after parsing, so adapters
// only need to communicate shape, not re-check it.
type Schema struct {
	// Type is the JSON type of this node.
	Type SchemaType

	// Description guides the model on what to put in this node.
	Description string

	// Properties maps field names to their schemas. Only set for objects.
	Properties map[string]*Schema

	// Required lists the object fields that must be present.
	Required []string

	// Items describes the element schema. Only set for arrays.
	Items *Schema

	// Enum restricts a string node to a fixed set of values.
	Enum []string
}

// Object is a convenience constructor for an object schema with all
// properties required, which is how every stage schema in this application
// is shaped.
func Object(description string, properties map[string]*Schema) *Schema {
	required := make([]string, 0, len(properties))
	for name := range properties {
		required = append(required, name)
	}

	return &Schema{
		Type:        TypeObject,
		Description: description,
		Properties:  properties,
		Required:    required,
	}
}
