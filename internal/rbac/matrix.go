package rbac

// Action is one CRUD-style operation on a resource.
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Role names known to the portal.
const (
	RoleAdministrator = "Administrator"
	RoleDoctor        = "Doctor"
	RoleNurse         = "Nurse"
	RoleOfficeManager = "Office Manager"
	RoleReceptionist  = "Receptionist"
)

// Resource names gated by the matrix.
const (
	ResourcePatient          = "patient"
	ResourceSchedule         = "schedule"
	ResourceVisitNotes       = "visit_notes"
	ResourceUsers            = "users"
	ResourceInsuranceInfo    = "insurance_info"
	ResourceEmergencyContact = "emergency_contact"
	ResourceAuditLog         = "audit_log"
	ResourcePermissions      = "permissions"
	ResourceUserLoginInfo    = "user_login_info"
	ResourceNurseAssignments = "nurse_assignments"
)

// Matrix maps role -> resource -> allowed actions. It is built once at
// startup and only ever read afterwards, so concurrent reads across
// requests need no locking. A missing role or resource means zero
// permissions (fail-closed).
//
// The matrix gates coarse role-level access only. Narrower, data-level
// restrictions ("clinician sees only assigned patients") cannot be
// expressed here: resource handlers must filter their queries using
// the identity from the session layer.
type Matrix map[string]map[string][]Action

// Default returns the portal's permission matrix.
func Default() Matrix {
	return Matrix{

		RoleAdministrator: {
			ResourcePatient:          {ActionView, ActionAdd, ActionEdit, ActionDelete},
			ResourceSchedule:         {ActionView, ActionAdd, ActionEdit, ActionDelete},
			ResourceVisitNotes:       {ActionView, ActionAdd, ActionEdit, ActionDelete},
			ResourceUsers:            {ActionView, ActionAdd, ActionEdit, ActionDelete},
			ResourceInsuranceInfo:    {ActionView, ActionAdd, ActionEdit, ActionDelete},
			ResourceEmergencyContact: {ActionView, ActionAdd, ActionEdit, ActionDelete},
			ResourceAuditLog:         {ActionView}, // view only, audit rows are immutable
			ResourcePermissions:      {ActionView, ActionAdd, ActionEdit},
			ResourceUserLoginInfo:    {ActionView, ActionAdd, ActionEdit},
			ResourceNurseAssignments: {ActionView, ActionAdd, ActionEdit},
		},

		RoleDoctor: {
			ResourcePatient:          {ActionView},
			ResourceSchedule:         {ActionView},
			ResourceVisitNotes:       {ActionView, ActionAdd}, // can add notes, not edit others
			ResourceNurseAssignments: {ActionView},
		},

		RoleNurse: {
			ResourcePatient:          {ActionView},
			ResourceSchedule:         {ActionView},
			ResourceVisitNotes:       {ActionView, ActionAdd},
			ResourceNurseAssignments: {ActionView},
		},

		RoleOfficeManager: {
			ResourcePatient:          {ActionView},
			ResourceSchedule:         {ActionView, ActionAdd, ActionEdit},
			ResourceUsers:            {ActionView, ActionAdd, ActionEdit},
			ResourceInsuranceInfo:    {ActionView, ActionAdd, ActionEdit},
			ResourceEmergencyContact: {ActionView, ActionAdd, ActionEdit},
		},

		RoleReceptionist: {
			ResourcePatient:          {ActionView, ActionAdd, ActionEdit},
			ResourceSchedule:         {ActionView, ActionAdd, ActionEdit},
			ResourceInsuranceInfo:    {ActionView, ActionAdd, ActionEdit},
			ResourceEmergencyContact: {ActionView, ActionAdd, ActionEdit},
		},
	}
}

// Can reports whether role may perform action on resource. Unknown
// roles, resources, and actions all return false.
func (m Matrix) Can(role, resource string, action Action) bool {
	resources, ok := m[role]
	if !ok {
		return false
	}
	actions, ok := resources[resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// RolePermissions returns a copy of all grants for a role, for admin
// pages that display permission tables. Unknown roles get an empty map.
func (m Matrix) RolePermissions(role string) map[string][]Action {
	out := make(map[string][]Action)
	for resource, actions := range m[role] {
		out[resource] = append([]Action(nil), actions...)
	}
	return out
}
