package authz

// Permissões no formato módulo:ação. As rotas mapeiam cada endpoint para uma
// dessas permissões; o conjunto efetivo de um usuário é o preset do perfil
// mais as exceções individuais.

const (
	// Global
	Superuser = "superuser"

	// Ordens de serviço
	OrdensView       = "ordens:view"
	OrdensCreate     = "ordens:create"
	OrdensUpdate     = "ordens:update"
	OrdensDelete     = "ordens:delete"
	OrdensStatus     = "ordens:status"
	OrdensReabrir    = "ordens:reabrir"
	OrdensObservacao = "ordens:observacao"

	// Planejamento de mecânicos
	PlanejamentoView     = "planejamento:view"
	PlanejamentoReorder  = "planejamento:reorder"
	PlanejamentoReassign = "planejamento:reassign"

	// Frota
	VeiculosView   = "veiculos:view"
	VeiculosCreate = "veiculos:create"
	VeiculosUpdate = "veiculos:update"
	VeiculosDelete = "veiculos:delete"

	// Mecânicos
	MecanicosView   = "mecanicos:view"
	MecanicosManage = "mecanicos:manage"

	// Estoque de peças
	EstoqueView   = "estoque:view"
	EstoqueMove   = "estoque:move"
	EstoqueManage = "estoque:manage"

	// Trocas de óleo
	TrocasView   = "trocas:view"
	TrocasManage = "trocas:manage"

	// Relatórios
	RelatoriosView = "relatorios:view"

	// Administração
	UsuariosView    = "usuarios:view"
	UsuariosManage  = "usuarios:manage"
	PerfisView      = "perfis:view"
	PerfisManage    = "perfis:manage"
	PermissoesView  = "permissoes:view"
)

// All lista todas as permissões concedíveis (sem o superuser).
var All = []string{
	OrdensView, OrdensCreate, OrdensUpdate, OrdensDelete, OrdensStatus, OrdensReabrir, OrdensObservacao,
	PlanejamentoView, PlanejamentoReorder, PlanejamentoReassign,
	VeiculosView, VeiculosCreate, VeiculosUpdate, VeiculosDelete,
	MecanicosView, MecanicosManage,
	EstoqueView, EstoqueMove, EstoqueManage,
	TrocasView, TrocasManage,
	RelatoriosView,
	UsuariosView, UsuariosManage,
	PerfisView, PerfisManage, PermissoesView,
}
