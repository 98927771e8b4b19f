package authz

// Gatekeeper decide acesso a partir do conjunto efetivo de permissões já
// calculado (preset do perfil + exceções individuais).
type Gatekeeper struct{}

func NewGatekeeper() *Gatekeeper {
	return &Gatekeeper{}
}

func (g *Gatekeeper) Can(perms map[string]bool, permission string) bool {
	if perms[Superuser] {
		return true
	}
	return perms[permission]
}

// Effective compõe o conjunto efetivo: começa pelo preset do perfil e aplica
// as exceções individuais por cima (conceder ou revogar).
func Effective(rolePermissions []string, overrides map[string]bool) map[string]bool {
	effective := make(map[string]bool, len(rolePermissions))
	for _, permission := range rolePermissions {
		effective[permission] = true
	}
	for permission, allowed := range overrides {
		if allowed {
			effective[permission] = true
		} else {
			delete(effective, permission)
		}
	}
	return effective
}
