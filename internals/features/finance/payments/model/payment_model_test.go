// file: internals/features/finance/payments/model/payment_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestAppendNoteBuildsTrail(t *testing.T) {
	var m Payment

	at1 := time.Date(2025, 10, 28, 9, 0, 0, 0, time.UTC)
	require.NoError(t, m.AppendNote(at1, "tagihan dibuat"))

	at2 := at1.Add(48 * time.Hour)
	require.NoError(t, m.AppendNote(at2, "cicilan #2 dilunasi bersama tagihan"))

	trail, err := m.NoteTrail()
	require.NoError(t, err)
	require.Len(t, trail, 2)

	// append-only: urutan masuk dipertahankan
	assert.Equal(t, "tagihan dibuat", trail[0].Body)
	assert.True(t, trail[0].At.Equal(at1))
	assert.Equal(t, "cicilan #2 dilunasi bersama tagihan", trail[1].Body)
	assert.True(t, trail[1].At.Equal(at2))
}

func TestNoteTrailEmpty(t *testing.T) {
	var m Payment
	trail, err := m.NoteTrail()
	require.NoError(t, err)
	assert.Nil(t, trail)
}

func TestNoteTrailCorruptPayload(t *testing.T) {
	m := Payment{PaymentNotes: datatypes.JSON(`{"bukan":"array"}`)}
	_, err := m.NoteTrail()
	assert.Error(t, err)
}
