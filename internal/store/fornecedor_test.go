package store

import (
	"context"
	"testing"

	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
)

func newFornecedorFixture(t *testing.T) (*FornecedorStore, *fakeCache, *fakeNotifier) {
	t.Helper()
	db := newTestDB(t)
	c := newFakeCache()
	n := &fakeNotifier{}
	return NewFornecedorStore(db, c, n, newTestLogger()), c, n
}

func TestFornecedorCreateRequiresNomeAndCNPJ(t *testing.T) {
	store, c, n := newFornecedorFixture(t)

	if _, err := store.Create(context.Background(), FornecedorInput{CNPJ: "12.345.678/0001-90"}); err == nil {
		t.Fatal("Create without nome succeeded, want error")
	}
	if _, err := store.Create(context.Background(), FornecedorInput{Nome: "Distribuidora Medfarma"}); err == nil {
		t.Fatal("Create without cnpj succeeded, want error")
	}

	fornecedores, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(fornecedores) != 0 {
		t.Errorf("List returned %d fornecedores after rejected creates, want 0", len(fornecedores))
	}
	if deletions := c.deletions(); len(deletions) != 0 {
		t.Errorf("rejected creates invalidated cache keys %v, want none", deletions)
	}
	if successes, errors := n.counts(); successes != 0 || errors != 2 {
		t.Errorf("notifications = %d successes, %d errors; want 0 and 2", successes, errors)
	}
}

func TestFornecedorOptionalBlankStoredAsNull(t *testing.T) {
	store, _, _ := newFornecedorFixture(t)

	fornecedor, err := store.Create(context.Background(), FornecedorInput{
		Nome:     "Distribuidora Medfarma",
		CNPJ:     "12.345.678/0001-90",
		Telefone: "",
		Email:    "  contato@medfarma.com.br  ",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if fornecedor.Telefone != nil {
		t.Errorf("Telefone = %q, want nil", *fornecedor.Telefone)
	}
	if fornecedor.Email == nil || *fornecedor.Email != "contato@medfarma.com.br" {
		t.Errorf("Email = %v, want trimmed address", fornecedor.Email)
	}
}

func TestFornecedorCreateDatabaseFailure(t *testing.T) {
	store, c, n := newFornecedorFixture(t)

	if err := store.db.Migrator().DropTable(&models.Fornecedor{}); err != nil {
		t.Fatalf("dropping table: %v", err)
	}

	if _, err := store.Create(context.Background(), FornecedorInput{
		Nome: "Distribuidora Medfarma",
		CNPJ: "12.345.678/0001-90",
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

func TestFornecedorDeleteIsHard(t *testing.T) {
	store, c, _ := newFornecedorFixture(t)

	fornecedor, err := store.Create(context.Background(), FornecedorInput{
		Nome: "Farmadist Ltda",
		CNPJ: "98.765.432/0001-10",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := store.Delete(context.Background(), fornecedor.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	var count int64
	if err := store.db.Model(&models.Fornecedor{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("fornecedores table has %d rows after delete, want 0", count)
	}

	// Only the fornecedores key is ever touched; other resources keep
	// their cached lists.
	for _, key := range c.deletions() {
		if key != FORNECEDORES_CACHE_KEY {
			t.Errorf("mutation invalidated foreign cache key %q", key)
		}
	}
}

func TestFornecedorUpdateAppliesPartial(t *testing.T) {
	store, _, _ := newFornecedorFixture(t)

	fornecedor, err := store.Create(context.Background(), FornecedorInput{
		Nome:     "Farmadist Ltda",
		CNPJ:     "98.765.432/0001-10",
		Telefone: "(11) 3333-0000",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	novoNome := "Farmadist Distribuidora Ltda"
	telefoneBlank := ""
	updated, err := store.Update(context.Background(), fornecedor.ID, FornecedorUpdate{
		Nome:     &novoNome,
		Telefone: &telefoneBlank,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Nome != novoNome {
		t.Errorf("Nome = %q, want %q", updated.Nome, novoNome)
	}
	if updated.CNPJ != "98.765.432/0001-10" {
		t.Errorf("CNPJ = %q, want untouched", updated.CNPJ)
	}
	if updated.Telefone != nil {
		t.Errorf("Telefone = %q, want nil after blank update", *updated.Telefone)
	}
}
