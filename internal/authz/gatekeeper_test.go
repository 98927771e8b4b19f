package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveComposesPresetAndOverrides(t *testing.T) {
	preset := []string{OrdensView, OrdensCreate, EstoqueView}

	effective := Effective(preset, map[string]bool{
		OrdensCreate:   false,
		TrocasManage:   true,
		RelatoriosView: false,
	})

	assert.True(t, effective[OrdensView], "permissão do preset se mantém")
	assert.False(t, effective[OrdensCreate], "exceção revoga permissão do preset")
	assert.True(t, effective[TrocasManage], "exceção concede permissão fora do preset")
	assert.False(t, effective[RelatoriosView], "revogar o que não se tem é inofensivo")
	assert.True(t, effective[EstoqueView])
}

func TestEffectiveEmptyInputs(t *testing.T) {
	assert.Empty(t, Effective(nil, nil))
	assert.Empty(t, Effective(nil, map[string]bool{OrdensView: false}))

	effective := Effective(nil, map[string]bool{OrdensView: true})
	assert.True(t, effective[OrdensView])
}

func TestGatekeeperCan(t *testing.T) {
	g := NewGatekeeper()

	perms := Effective([]string{OrdensView}, nil)
	assert.True(t, g.Can(perms, OrdensView))
	assert.False(t, g.Can(perms, OrdensDelete))
	assert.False(t, g.Can(nil, OrdensView))
}

func TestGatekeeperSuperuserBypass(t *testing.T) {
	g := NewGatekeeper()
	perms := map[string]bool{Superuser: true}

	for _, permission := range All {
		assert.Truef(t, g.Can(perms, permission), "superuser deveria passar em %s", permission)
	}
}
