package contact

// Role is the meaning of a form field to the pipeline.
type Role string

const (
	RoleName    Role = "name"
	RoleEmail   Role = "email"
	RolePhone   Role = "phone"
	RoleCompany Role = "company"
	RoleMessage Role = "message"
)

// Field binds an input name to a role.
type Field struct {
	Name     string
	Role     Role
	Required bool
	MaxLen   int
}

// Schema is the ordered list of inputs a form accepts.
// Inputs not listed are ignored.
type Schema []Field

// Names returns the input names in schema order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, f := range s {
		names = append(names, f.Name)
	}
	return names
}

// Field looks up the field carrying role.
func (s Schema) Field(role Role) (Field, bool) {
	for _, f := range s {
		if f.Role == role {
			return f, true
		}
	}
	return Field{}, false
}

const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxPhoneLen   = 50
	maxCompanyLen = 200
	maxMessageLen = 5000
)

// DefaultSchema is the field set shared by the main form and CTA modals.
func DefaultSchema() Schema {
	return Schema{
		{Name: "name", Role: RoleName, Required: true, MaxLen: maxNameLen},
		{Name: "email", Role: RoleEmail, Required: true, MaxLen: maxEmailLen},
		{Name: "company", Role: RoleCompany, MaxLen: maxCompanyLen},
		{Name: "phone", Role: RolePhone, MaxLen: maxPhoneLen},
		{Name: "message", Role: RoleMessage, MaxLen: maxMessageLen},
	}
}
