package policy

// Action describes the kind of operation an identity wants to perform.
type Action string

const (
	ActionView   Action = "view"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
)

// Permission codenames grantable to users.
const (
	PermAddProduct    = "add_product"
	PermDeleteProduct = "delete_product"
	PermViewOrder     = "view_order"
	PermViewProfile   = "view_profile"
)
