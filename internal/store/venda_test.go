package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
)

func newVendaFixture(t *testing.T) (*VendaStore, *fakeCache, *fakeNotifier) {
	t.Helper()
	db := newTestDB(t)
	c := newFakeCache()
	n := &fakeNotifier{}
	return NewVendaStore(db, c, n, newTestLogger()), c, n
}

func TestVendaCreatePersistsTotalVerbatim(t *testing.T) {
	store, _, _ := newVendaFixture(t)

	// The caller computed a discounted total; it is stored as given, not
	// recomputed from quantidade * preco_unitario.
	venda, err := store.Create(context.Background(), VendaInput{
		NumeroVenda:     "V001",
		ClienteNome:     "Ana Silva",
		MedicamentoNome: "Dipirona 500mg",
		Quantidade:      3,
		PrecoUnitario:   "12.00",
		PrecoTotal:      "30.00",
		Desconto:        "6.00",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if venda.PrecoTotal != "30.00" {
		t.Errorf("PrecoTotal = %q, want %q", venda.PrecoTotal, "30.00")
	}

	var row models.Venda
	if err := store.db.First(&row, "numero_venda = ?", "V001").Error; err != nil {
		t.Fatalf("fetching venda: %v", err)
	}
	total, err := decimal.NewFromString(row.PrecoTotal)
	if err != nil {
		t.Fatalf("stored PrecoTotal %q is not a decimal: %v", row.PrecoTotal, err)
	}
	if !total.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("stored PrecoTotal = %s, want 30.00", total)
	}
}

func TestVendaCreateValidatesRequiredFields(t *testing.T) {
	store, c, n := newVendaFixture(t)

	cases := []VendaInput{
		{ClienteNome: "Ana", MedicamentoNome: "X", Quantidade: 1, PrecoUnitario: "1.00", PrecoTotal: "1.00"},
		{NumeroVenda: "V1", MedicamentoNome: "X", Quantidade: 1, PrecoUnitario: "1.00", PrecoTotal: "1.00"},
		{NumeroVenda: "V1", ClienteNome: "Ana", Quantidade: 1, PrecoUnitario: "1.00", PrecoTotal: "1.00"},
		{NumeroVenda: "V1", ClienteNome: "Ana", MedicamentoNome: "X", Quantidade: 0, PrecoUnitario: "1.00", PrecoTotal: "1.00"},
	}
	for i, input := range cases {
		if _, err := store.Create(context.Background(), input); err == nil {
			t.Fatalf("case %d succeeded, want validation error", i)
		}
	}

	var count int64
	if err := store.db.Model(&models.Venda{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("vendas table has %d rows after rejected creates, want 0", count)
	}
	if deletions := c.deletions(); len(deletions) != 0 {
		t.Errorf("rejected creates invalidated cache keys %v, want none", deletions)
	}
	if successes, errors := n.counts(); successes != 0 || errors != len(cases) {
		t.Errorf("notifications = %d successes, %d errors; want 0 and %d", successes, errors, len(cases))
	}
}

func TestVendaCreateDatabaseFailure(t *testing.T) {
	store, c, n := newVendaFixture(t)

	if err := store.db.Migrator().DropTable(&models.Venda{}); err != nil {
		t.Fatalf("dropping table: %v", err)
	}

	if _, err := store.Create(context.Background(), VendaInput{
		NumeroVenda:     "V003",
		ClienteNome:     "Ana Silva",
		MedicamentoNome: "Dipirona 500mg",
		Quantidade:      1,
		PrecoUnitario:   "12.00",
		PrecoTotal:      "12.00",
	}); err == nil {
		t.Fatal("Create against a missing table succeeded, want error")
	}

	if deletions := c.deletions(); len(deletions) != 0 {
		t.Errorf("failed create invalidated cache keys %v, want none", deletions)
	}
	if successes, errors := n.counts(); successes != 0 || errors != 1 {
		t.Errorf("notifications = %d successes, %d errors; want 0 and 1", successes, errors)
	}
}

func TestVendaCreateDefaultsDescontoAndData(t *testing.T) {
	store, _, _ := newVendaFixture(t)

	before := time.Now()
	venda, err := store.Create(context.Background(), VendaInput{
		NumeroVenda:     "V002",
		ClienteNome:     "Bruno Costa",
		MedicamentoNome: "Paracetamol 750mg",
		Quantidade:      1,
		PrecoUnitario:   "9.90",
		PrecoTotal:      "9.90",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if venda.Desconto != "0.00" {
		t.Errorf("Desconto = %q, want %q", venda.Desconto, "0.00")
	}
	if venda.DataVenda.Before(before) || venda.DataVenda.After(time.Now()) {
		t.Errorf("DataVenda = %v, want defaulted to now", venda.DataVenda)
	}
}

func TestFilterVendasByCliente(t *testing.T) {
	vendas := []models.Venda{
		{ClienteNome: "Ana Silva", MedicamentoNome: "Dipirona 500mg"},
		{ClienteNome: "Bruno Costa", MedicamentoNome: "Paracetamol 750mg"},
	}

	matched := FilterVendas(vendas, VendaFilter{Cliente: "ana"})
	if len(matched) != 1 || matched[0].ClienteNome != "Ana Silva" {
		t.Errorf("FilterVendas(cliente=ana) = %+v, want only Ana Silva", matched)
	}

	if matched := FilterVendas(vendas, VendaFilter{Cliente: "carla"}); len(matched) != 0 {
		t.Errorf("FilterVendas(cliente=carla) = %+v, want empty", matched)
	}
}

func TestFilterVendasByProdutoSubstring(t *testing.T) {
	vendas := []models.Venda{
		{ClienteNome: "Ana Silva", MedicamentoNome: "Dipirona 500mg"},
		{ClienteNome: "Bruno Costa", MedicamentoNome: "Paracetamol 750mg"},
	}

	matched := FilterVendas(vendas, VendaFilter{Produto: "DIPI"})
	if len(matched) != 1 || matched[0].MedicamentoNome != "Dipirona 500mg" {
		t.Errorf("FilterVendas(produto=DIPI) = %+v, want only Dipirona", matched)
	}
}

func TestFilterVendasByCalendarDay(t *testing.T) {
	dia := time.Date(2026, time.March, 10, 23, 45, 0, 0, time.UTC)
	vendas := []models.Venda{
		{ClienteNome: "Ana Silva", MedicamentoNome: "Dipirona 500mg", DataVenda: dia},
		{ClienteNome: "Ana Silva", MedicamentoNome: "Dipirona 500mg", DataVenda: dia.Add(time.Hour)},
	}

	matched := FilterVendas(vendas, VendaFilter{Data: "2026-03-10"})
	if len(matched) != 1 {
		t.Fatalf("FilterVendas(data=2026-03-10) matched %d vendas, want 1", len(matched))
	}
	if !matched[0].DataVenda.Equal(dia) {
		t.Errorf("matched venda on %v, want the one at 23:45", matched[0].DataVenda)
	}
}

func TestFilterVendasCombinesCriteria(t *testing.T) {
	dia := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	vendas := []models.Venda{
		{ClienteNome: "Ana Silva", MedicamentoNome: "Dipirona 500mg", DataVenda: dia},
		{ClienteNome: "Ana Silva", MedicamentoNome: "Paracetamol 750mg", DataVenda: dia},
		{ClienteNome: "Bruno Costa", MedicamentoNome: "Dipirona 500mg", DataVenda: dia},
	}

	matched := FilterVendas(vendas, VendaFilter{Cliente: "ana", Produto: "dipirona", Data: "2026-03-10"})
	if len(matched) != 1 {
		t.Fatalf("combined filter matched %d vendas, want 1", len(matched))
	}
	if matched[0].ClienteNome != "Ana Silva" || matched[0].MedicamentoNome != "Dipirona 500mg" {
		t.Errorf("combined filter matched %+v", matched[0])
	}
}

func TestVendaSearchFiltersListedVendas(t *testing.T) {
	store, _, _ := newVendaFixture(t)

	seeds := []VendaInput{
		{NumeroVenda: "V010", ClienteNome: "Ana Silva", MedicamentoNome: "Dipirona 500mg", Quantidade: 1, PrecoUnitario: "12.00", PrecoTotal: "12.00"},
		{NumeroVenda: "V011", ClienteNome: "Bruno Costa", MedicamentoNome: "Paracetamol 750mg", Quantidade: 2, PrecoUnitario: "9.90", PrecoTotal: "19.80"},
	}
	for _, seed := range seeds {
		if _, err := store.Create(context.Background(), seed); err != nil {
			t.Fatalf("Create(%s) returned error: %v", seed.NumeroVenda, err)
		}
	}

	matched, err := store.Search(context.Background(), VendaFilter{Cliente: "bruno"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matched) != 1 || matched[0].NumeroVenda != "V011" {
		t.Errorf("Search(cliente=bruno) = %+v, want only V011", matched)
	}
}
