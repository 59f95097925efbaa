package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "gestione-ordini-test"
)

var testIdentity = Identity{UserID: 7, Username: "alice", Ruolo: "operatore"}

func TestGenerateAndParse_Roundtrip(t *testing.T) {
	tok, err := Generate(testSecret, testIssuer, testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(7), id.UserID)
	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, "operatore", id.Ruolo)
}

// La sessione vale esattamente 2 giorni: poco prima della scadenza il token
// è accettato, oltre la scadenza è rifiutato.
func TestParse_ScadenzaDueGiorni(t *testing.T) {
	quasiScaduto, err := generateWithTTL(testSecret, testIssuer, testIdentity, time.Minute)
	require.NoError(t, err)
	_, err = Parse(testSecret, quasiScaduto)
	assert.NoError(t, err, "un token non ancora scaduto deve essere accettato")

	scaduto, err := generateWithTTL(testSecret, testIssuer, testIdentity, -time.Second)
	require.NoError(t, err)
	_, err = Parse(testSecret, scaduto)
	assert.Error(t, err, "un token oltre la scadenza deve essere rifiutato")
}

func TestParse_SecretErrato(t *testing.T) {
	tok, err := Generate(testSecret, testIssuer, testIdentity)
	require.NoError(t, err)

	_, err = Parse("un-altro-secret-completamente-diverso", tok)
	assert.Error(t, err, "un secret errato deve invalidare il token")
}

func TestParse_TokenMalformato(t *testing.T) {
	_, err := Parse(testSecret, "token.invalido.qui")
	assert.Error(t, err)
}

func TestGenerate_SecretVuoto(t *testing.T) {
	_, err := Generate("", testIssuer, testIdentity)
	assert.Error(t, err)
}
