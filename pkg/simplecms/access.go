package simplecms

import "fmt"

// Role is the domain type for caller roles. The role set is closed.
type Role string

// Role constants (typed).
const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Operation is the domain type for content operations. The operation set is
// closed.
type Operation string

// Operation constants (typed).
const (
	OperationCreate Operation = "create"
	OperationRead   Operation = "read"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Roles returns the closed role set.
func Roles() []Role {
	return []Role{RoleAdmin, RoleEditor, RoleViewer}
}

// Operations returns the closed operation set.
func Operations() []Operation {
	return []Operation{OperationCreate, OperationRead, OperationUpdate, OperationDelete}
}

// AccessMatrix is a flat, total (role, operation) permission table for one
// content kind. It is immutable once constructed; there is no role hierarchy,
// precedence, or implicit default.
type AccessMatrix struct {
	grants map[Role]map[Operation]bool
}

// NewAccessMatrix builds a matrix from explicit grants. Every role in the
// closed role set must define an entry for every operation in the closed
// operation set; a missing cell or an unknown key fails construction rather
// than defaulting at lookup time.
func NewAccessMatrix(grants map[Role]map[Operation]bool) (*AccessMatrix, error) {
	for role := range grants {
		if !knownRole(role) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}
		for op := range grants[role] {
			if !knownOperation(op) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
			}
		}
	}
	copied := make(map[Role]map[Operation]bool, len(Roles()))
	for _, role := range Roles() {
		ops, ok := grants[role]
		if !ok {
			return nil, fmt.Errorf("%w: no entries for role %q", ErrIncompleteMatrix, role)
		}
		copied[role] = make(map[Operation]bool, len(Operations()))
		for _, op := range Operations() {
			allowed, ok := ops[op]
			if !ok {
				return nil, fmt.Errorf("%w: no entry for (%s, %s)", ErrIncompleteMatrix, role, op)
			}
			copied[role][op] = allowed
		}
	}
	return &AccessMatrix{grants: copied}, nil
}

// Allows reports whether role may perform op. Construction guarantees an
// entry exists for every pair in the closed sets.
func (m *AccessMatrix) Allows(role Role, op Operation) bool {
	return m.grants[role][op]
}

func knownRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

func knownOperation(op Operation) bool {
	switch op {
	case OperationCreate, OperationRead, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// PolicySet registers one access matrix per content kind. Different kinds may
// legitimately grant the same role different permissions for the same
// operation.
type PolicySet struct {
	matrices map[string]*AccessMatrix
}

// NewPolicySet creates an empty policy set.
func NewPolicySet() *PolicySet {
	return &PolicySet{matrices: make(map[string]*AccessMatrix)}
}

// Register associates a matrix with a content kind, replacing any previous
// matrix for that kind.
func (p *PolicySet) Register(kind string, matrix *AccessMatrix) {
	p.matrices[kind] = matrix
}

// Allows resolves a permission for a content kind. An unregistered kind is a
// configuration error, not an implicit deny.
func (p *PolicySet) Allows(kind string, role Role, op Operation) (bool, error) {
	matrix, ok := p.matrices[kind]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrPolicyNotFound, kind)
	}
	return matrix.Allows(role, op), nil
}

// DefaultArticleMatrix returns the stock article permissions: admins do
// everything, editors manage articles but cannot delete them, viewers only
// read.
func DefaultArticleMatrix() *AccessMatrix {
	return mustMatrix(map[Role]map[Operation]bool{
		RoleAdmin: {
			OperationCreate: true,
			OperationRead:   true,
			OperationUpdate: true,
			OperationDelete: true,
		},
		RoleEditor: {
			OperationCreate: true,
			OperationRead:   true,
			OperationUpdate: true,
			OperationDelete: false,
		},
		RoleViewer: {
			OperationCreate: false,
			OperationRead:   true,
			OperationUpdate: false,
			OperationDelete: false,
		},
	})
}

// DefaultProductMatrix returns the stock product permissions. Unlike articles,
// editors may delete products.
func DefaultProductMatrix() *AccessMatrix {
	return mustMatrix(map[Role]map[Operation]bool{
		RoleAdmin: {
			OperationCreate: true,
			OperationRead:   true,
			OperationUpdate: true,
			OperationDelete: true,
		},
		RoleEditor: {
			OperationCreate: true,
			OperationRead:   true,
			OperationUpdate: true,
			OperationDelete: true,
		},
		RoleViewer: {
			OperationCreate: false,
			OperationRead:   true,
			OperationUpdate: false,
			OperationDelete: false,
		},
	})
}

func mustMatrix(grants map[Role]map[Operation]bool) *AccessMatrix {
	m, err := NewAccessMatrix(grants)
	if err != nil {
		panic(err)
	}
	return m
}
