package format

// Role is the semantic meaning assigned to a column during detection.
type Role string

const (
	RoleDate        Role = "date"
	RoleAmount      Role = "amount"
	RoleDescription Role = "description"
	RoleMerchant    Role = "merchant"
	RoleReference   Role = "reference"
	RoleCategory    Role = "category"
	RoleAccount     Role = "account"
	RoleUnknown     Role = "unknown"
)
