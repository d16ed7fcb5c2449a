package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stages() []TaxonomyEntry {
	return []TaxonomyEntry{
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "Novo Convertido"},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "Discípulo"},
	}
}

func TestMatchTaxonomyByName(t *testing.T) {
	id, err := MatchTaxonomy(stages(), "Novo Convertido")
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", id.String())
}

func TestMatchTaxonomyByNameCaseInsensitive(t *testing.T) {
	id, err := MatchTaxonomy(stages(), "  novo convertido ")
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", id.String())
}

func TestMatchTaxonomyByID(t *testing.T) {
	id, err := MatchTaxonomy(stages(), "00000000-0000-0000-0000-000000000002")
	require.NoError(t, err)
	assert.Equal(t, "Discípulo", stages()[1].Name)
	assert.Equal(t, stages()[1].ID, id)
}

func TestMatchTaxonomyNameAndIDAgree(t *testing.T) {
	// salvar com o nome de exibição resolve para o mesmo id que salvar com o id
	byName, err := MatchTaxonomy(stages(), "Discípulo")
	require.NoError(t, err)
	byID, err := MatchTaxonomy(stages(), byName.String())
	require.NoError(t, err)
	assert.Equal(t, byName, byID)
}

func TestMatchTaxonomyUnknownUUIDDoesNotFallBackToName(t *testing.T) {
	_, err := MatchTaxonomy(stages(), uuid.NewString())
	assert.ErrorIs(t, err, ErrTaxonomyNotFound)
}

func TestMatchTaxonomyUnknownName(t *testing.T) {
	_, err := MatchTaxonomy(stages(), "Obreiro")
	assert.ErrorIs(t, err, ErrTaxonomyNotFound)
}

func TestMatchTaxonomyEmpty(t *testing.T) {
	_, err := MatchTaxonomy(stages(), "   ")
	assert.ErrorIs(t, err, ErrTaxonomyNotFound)
}

func TestMatchTaxonomyDuplicateNameIsAmbiguous(t *testing.T) {
	dup := append(stages(), TaxonomyEntry{ID: uuid.New(), Name: "novo convertido"})
	_, err := MatchTaxonomy(dup, "Novo Convertido")
	assert.ErrorIs(t, err, ErrTaxonomyAmbiguous)
}
