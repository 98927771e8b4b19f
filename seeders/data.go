package seeders

import "fleet-system/internal/authz"

// permissionDescriptions documenta cada permissão concedível. O código é a
// fonte da verdade (internal/authz); aqui só moram os textos exibidos na UI.
var permissionDescriptions = map[string]string{
	authz.Superuser: "Acesso irrestrito a todas as operações",

	authz.OrdensView:       "Ver ordens de serviço e seu histórico",
	authz.OrdensCreate:     "Abrir novas ordens de serviço",
	authz.OrdensUpdate:     "Editar dados de ordens de serviço",
	authz.OrdensDelete:     "Excluir ordens de serviço",
	authz.OrdensStatus:     "Mudar o status de ordens de serviço",
	authz.OrdensReabrir:    "Reabrir ordens finalizadas",
	authz.OrdensObservacao: "Registrar observações em ordens",

	authz.PlanejamentoView:     "Ver o quadro de planejamento dos mecânicos",
	authz.PlanejamentoReorder:  "Reordenar a fila de execução de um mecânico",
	authz.PlanejamentoReassign: "Transferir ordens entre mecânicos",

	authz.VeiculosView:   "Ver a frota de veículos",
	authz.VeiculosCreate: "Cadastrar veículos",
	authz.VeiculosUpdate: "Editar veículos",
	authz.VeiculosDelete: "Excluir veículos",

	authz.MecanicosView:   "Ver o cadastro de mecânicos",
	authz.MecanicosManage: "Gerenciar o cadastro de mecânicos",

	authz.EstoqueView:   "Ver o estoque de peças e movimentações",
	authz.EstoqueMove:   "Registrar entradas e saídas de peças",
	authz.EstoqueManage: "Gerenciar o cadastro de peças",

	authz.TrocasView:   "Ver o controle de trocas de óleo",
	authz.TrocasManage: "Registrar e excluir trocas de óleo",

	authz.RelatoriosView: "Gerar relatórios e exportações",

	authz.UsuariosView:   "Ver usuários e suas permissões",
	authz.UsuariosManage: "Gerenciar usuários e exceções de permissão",
	authz.PerfisView:     "Ver perfis de acesso",
	authz.PerfisManage:   "Gerenciar perfis de acesso",
	authz.PermissoesView: "Ver o catálogo de permissões",
}

// rolePresets define o conjunto padrão de permissões de cada perfil.
var rolePresets = map[string][]string{
	"Administrador": {authz.Superuser},
	"Supervisor": {
		authz.OrdensView, authz.OrdensCreate, authz.OrdensUpdate, authz.OrdensDelete,
		authz.OrdensStatus, authz.OrdensReabrir, authz.OrdensObservacao,
		authz.PlanejamentoView, authz.PlanejamentoReorder, authz.PlanejamentoReassign,
		authz.VeiculosView, authz.VeiculosCreate, authz.VeiculosUpdate, authz.VeiculosDelete,
		authz.MecanicosView, authz.MecanicosManage,
		authz.EstoqueView, authz.TrocasView, authz.TrocasManage,
		authz.RelatoriosView,
	},
	"Oficina": {
		authz.OrdensView, authz.OrdensCreate, authz.OrdensUpdate,
		authz.OrdensStatus, authz.OrdensObservacao,
		authz.PlanejamentoView, authz.PlanejamentoReorder,
		authz.VeiculosView, authz.MecanicosView,
		authz.TrocasView, authz.TrocasManage,
	},
	"Almoxarifado": {
		authz.OrdensView, authz.OrdensStatus, authz.OrdensObservacao,
		authz.EstoqueView, authz.EstoqueMove, authz.EstoqueManage,
	},
	"Compras": {
		authz.OrdensView, authz.OrdensStatus, authz.OrdensObservacao,
		authz.EstoqueView,
	},
}

var roleDescriptions = map[string]string{
	"Administrador": "Acesso total ao sistema",
	"Supervisor":    "Coordena a oficina e o planejamento",
	"Oficina":       "Equipe da oficina mecânica",
	"Almoxarifado":  "Equipe do almoxarifado de peças",
	"Compras":       "Equipe do setor de compras",
}
