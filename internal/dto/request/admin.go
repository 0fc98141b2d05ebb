package request

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user vendor admin super_admin"`
}

type UpdateVendorStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved suspended rejected"`
}

type UpdatePollStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=requested active"`
}
