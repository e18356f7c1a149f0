package movimentacao

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
)

// fakeStore guarda o estado em memória compartilhado pelos repositórios
// falsos. As leituras devolvem cópias para que mutações locais do caso de
// uso não vazem para o "banco" sem passar pelos métodos de escrita.
type fakeStore struct {
	mu           sync.Mutex
	filiais      map[string]*entity.Filial
	funcionarios map[string]*entity.Funcionario
	pendencias   map[string]*entity.Pendencia
	adesoes      map[string]*entity.Adesao
	planos       map[string]*entity.Plano

	// simularCorridaPendencia faz o próximo Create de pendência perder uma
	// corrida: insere uma concorrente para o mesmo par e devolve ErrDuplicate.
	simularCorridaPendencia bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		filiais:      make(map[string]*entity.Filial),
		funcionarios: make(map[string]*entity.Funcionario),
		pendencias:   make(map[string]*entity.Pendencia),
		adesoes:      make(map[string]*entity.Adesao),
		planos:       make(map[string]*entity.Plano),
	}
}

func (s *fakeStore) pendenciaAberta(funcionarioID, tipo string) *entity.Pendencia {
	for _, p := range s.pendencias {
		if p.FuncionarioID == funcionarioID && p.Tipo == tipo && p.Status == entity.PendenciaPendente {
			c := *p
			return &c
		}
	}
	return nil
}

type fakeFuncionarioRepo struct{ s *fakeStore }

var _ repository.FuncionarioRepository = (*fakeFuncionarioRepo)(nil)

func (r *fakeFuncionarioRepo) Create(_ context.Context, f *entity.Funcionario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *f
	r.s.funcionarios[f.ID] = &c
	return nil
}

func (r *fakeFuncionarioRepo) GetByID(_ context.Context, id string) (*entity.Funcionario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.funcionarios[id]
	if !ok {
		return nil, nil
	}
	c := *f
	return &c, nil
}

func (r *fakeFuncionarioRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Funcionario, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeFuncionarioRepo) Update(_ context.Context, f *entity.Funcionario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.funcionarios[f.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *f
	r.s.funcionarios[f.ID] = &c
	return nil
}

func (r *fakeFuncionarioRepo) UpdateStatus(_ context.Context, id, status string, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.funcionarios[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.Status = status
	f.UpdatedAt = updatedAt
	return nil
}

func (r *fakeFuncionarioRepo) ListByFilial(_ context.Context, filialID, status string, _, _ int) ([]*entity.Funcionario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Funcionario
	for _, f := range r.s.funcionarios {
		if f.FilialID == filialID && (status == "" || f.Status == status) {
			c := *f
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeFuncionarioRepo) ListByEmpresa(_ context.Context, empresaID, status string) ([]*entity.Funcionario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Funcionario
	for _, f := range r.s.funcionarios {
		filial := r.s.filiais[f.FilialID]
		if filial == nil || filial.EmpresaID != empresaID {
			continue
		}
		if status != "" && f.Status != status {
			continue
		}
		c := *f
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeFuncionarioRepo) ListComPendenciaExigida(_ context.Context, empresaID, filialID string) ([]*entity.Funcionario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	exigidos := map[string]bool{
		entity.FuncionarioPendente:           true,
		entity.FuncionarioExclusaoSolicitada: true,
		entity.FuncionarioEdicaoSolicitada:   true,
	}
	var out []*entity.Funcionario
	for _, f := range r.s.funcionarios {
		filial := r.s.filiais[f.FilialID]
		if filial == nil || filial.EmpresaID != empresaID {
			continue
		}
		if filialID != "" && f.FilialID != filialID {
			continue
		}
		if !exigidos[f.Status] {
			continue
		}
		c := *f
		out = append(out, &c)
	}
	return out, nil
}

type fakePendenciaRepo struct{ s *fakeStore }

var _ repository.PendenciaRepository = (*fakePendenciaRepo)(nil)

func (r *fakePendenciaRepo) Create(_ context.Context, p *entity.Pendencia) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.simularCorridaPendencia {
		r.s.simularCorridaPendencia = false
		concorrente := *p
		concorrente.ID = uuid.New().String()
		concorrente.Protocolo = "CONCORRENTE-" + concorrente.Protocolo
		r.s.pendencias[concorrente.ID] = &concorrente
		return domain.ErrDuplicate
	}
	if existente := r.s.pendenciaAberta(p.FuncionarioID, p.Tipo); existente != nil {
		// Índice único parcial em (funcionario_id, tipo) WHERE status = 'pendente'.
		return domain.ErrDuplicate
	}
	c := *p
	r.s.pendencias[p.ID] = &c
	return nil
}

func (r *fakePendenciaRepo) GetByID(_ context.Context, id string) (*entity.Pendencia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pendencias[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakePendenciaRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Pendencia, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePendenciaRepo) GetByProtocolo(_ context.Context, protocolo string) (*entity.Pendencia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.pendencias {
		if p.Protocolo == protocolo {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakePendenciaRepo) GetAbertaPorTipo(_ context.Context, funcionarioID, tipo string) (*entity.Pendencia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.pendenciaAberta(funcionarioID, tipo), nil
}

func (r *fakePendenciaRepo) Concluir(_ context.Context, id string, concluidaEm time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pendencias[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = entity.PendenciaConcluida
	p.ConcluidaEm = &concluidaEm
	return nil
}

func (r *fakePendenciaRepo) ListByCorretor(_ context.Context, corretorID, status string, _, _ int) ([]*entity.Pendencia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Pendencia
	for _, p := range r.s.pendencias {
		if p.CorretorID == corretorID && (status == "" || p.Status == status) {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakePendenciaRepo) ListByFilial(_ context.Context, filialID, status string, _, _ int) ([]*entity.Pendencia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Pendencia
	for _, p := range r.s.pendencias {
		if p.FilialID == filialID && (status == "" || p.Status == status) {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeAdesaoRepo struct{ s *fakeStore }

var _ repository.AdesaoRepository = (*fakeAdesaoRepo)(nil)

func (r *fakeAdesaoRepo) Create(_ context.Context, a *entity.Adesao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *a
	r.s.adesoes[a.ID] = &c
	return nil
}

func (r *fakeAdesaoRepo) ListByFuncionario(_ context.Context, funcionarioID string) ([]*entity.Adesao, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Adesao
	for _, a := range r.s.adesoes {
		if a.FuncionarioID == funcionarioID {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeAdesaoRepo) UpdateStatusPorFuncionario(_ context.Context, funcionarioID, status string, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.adesoes {
		if a.FuncionarioID == funcionarioID {
			a.Status = status
			a.UpdatedAt = updatedAt
		}
	}
	return nil
}

type fakeFilialRepo struct{ s *fakeStore }

var _ repository.FilialRepository = (*fakeFilialRepo)(nil)

func (r *fakeFilialRepo) Create(_ context.Context, f *entity.Filial) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *f
	r.s.filiais[f.ID] = &c
	return nil
}

func (r *fakeFilialRepo) GetByID(_ context.Context, id string) (*entity.Filial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.filiais[id]
	if !ok {
		return nil, nil
	}
	c := *f
	return &c, nil
}

func (r *fakeFilialRepo) ListByEmpresa(_ context.Context, empresaID string) ([]*entity.Filial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Filial
	for _, f := range r.s.filiais {
		if f.EmpresaID == empresaID {
			c := *f
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeFilialRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.filiais[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.Status = status
	return nil
}

type fakePlanoRepo struct{ s *fakeStore }

var _ repository.PlanoRepository = (*fakePlanoRepo)(nil)

func (r *fakePlanoRepo) Create(_ context.Context, p *entity.Plano) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *p
	r.s.planos[p.ID] = &c
	return nil
}

func (r *fakePlanoRepo) GetByID(_ context.Context, id string) (*entity.Plano, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.planos[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakePlanoRepo) ListByFilial(_ context.Context, filialID string) ([]*entity.Plano, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Plano
	for _, p := range r.s.planos {
		if p.FilialID == filialID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakePlanoRepo) UpdateValores(_ context.Context, p *entity.Plano) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existente, ok := r.s.planos[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existente.ValorTitular = p.ValorTitular
	existente.ValorDependente = p.ValorDependente
	return nil
}

// fakeTxRunner serializa as unidades de trabalho com um mutex, emulando o
// bloqueio de linha (SELECT FOR UPDATE) que a implementação real obtém do
// banco. Sem rollback: os testes não exercem falha no meio da transação.
type fakeTxRunner struct {
	s  *fakeStore
	mu sync.Mutex
}

var _ TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	funcRepo repository.FuncionarioRepository,
	adesaoRepo repository.AdesaoRepository,
	pendRepo repository.PendenciaRepository,
	filialRepo repository.FilialRepository,
) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(
		&fakeFuncionarioRepo{s: t.s},
		&fakeAdesaoRepo{s: t.s},
		&fakePendenciaRepo{s: t.s},
		&fakeFilialRepo{s: t.s},
	)
}

// ambiente é o arranjo padrão dos testes: uma filial com corretor vinculado
// e um plano de vida ofertado.
type ambiente struct {
	store *fakeStore
	uc    *UseCase
}

const (
	testCorretorID = "corretor-1"
	testEmpresaID  = "empresa-1"
	testFilialID   = "filial-1"
	testPlanoID    = "plano-vida-1"
)

func novoAmbiente() *ambiente {
	s := newFakeStore()
	s.filiais[testFilialID] = &entity.Filial{
		ID:          testFilialID,
		EmpresaID:   testEmpresaID,
		CorretorID:  testCorretorID,
		CNPJ:        "11222333000181",
		RazaoSocial: "Acme Logística Ltda",
		Status:      entity.FilialAtiva,
	}
	s.planos[testPlanoID] = &entity.Plano{
		ID:       testPlanoID,
		FilialID: testFilialID,
		Tipo:     entity.PlanoVida,
		Nome:     "Vida Empresarial",
		Status:   "ativo",
	}

	uc := NewUseCase(
		&fakeTxRunner{s: s},
		&fakeFuncionarioRepo{s: s},
		&fakeFilialRepo{s: s},
		&fakePlanoRepo{s: s},
		&fakePendenciaRepo{s: s},
		Config{LoteTamanho: 2, LotePausa: time.Millisecond},
	)
	return &ambiente{store: s, uc: uc}
}

func (a *ambiente) escopo() Escopo {
	return Escopo{CorretorID: testCorretorID, EmpresaID: testEmpresaID}
}

// novoFuncionario insere um funcionário direto no store, sem passar pelo
// fluxo de inclusão; usado para montar cenários de deriva e de resolução.
func (a *ambiente) novoFuncionario(status string) *entity.Funcionario {
	f := &entity.Funcionario{
		ID:       uuid.New().String(),
		FilialID: testFilialID,
		Nome:     "Maria Souza",
		CPF:      "52998224725",
		Status:   status,
	}
	a.store.funcionarios[f.ID] = f
	return f
}

func (a *ambiente) novaPendencia(funcionarioID, tipo, statusAnterior string) *entity.Pendencia {
	p := &entity.Pendencia{
		ID:             uuid.New().String(),
		Protocolo:      gerarProtocolo(time.Now()),
		Tipo:           tipo,
		FuncionarioID:  funcionarioID,
		FilialID:       testFilialID,
		CorretorID:     testCorretorID,
		StatusAnterior: statusAnterior,
		Status:         entity.PendenciaPendente,
		CriadaEm:       time.Now(),
	}
	a.store.pendencias[p.ID] = p
	return p
}

func (a *ambiente) novaAdesao(funcionarioID, status string) *entity.Adesao {
	ad := &entity.Adesao{
		ID:            uuid.New().String(),
		FuncionarioID: funcionarioID,
		PlanoID:       testPlanoID,
		Status:        status,
	}
	a.store.adesoes[ad.ID] = ad
	return ad
}
