package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSubmitEntry_TrimsAndStores(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewEntryService(store, zap.NewNop())

	entry, err := svc.SubmitEntry(context.Background(), "  Alice  ", " alice@example.com ")

	require.NoError(t, err)
	assert.Equal(t, "Alice", entry.TextValue)
	assert.Equal(t, "alice@example.com", entry.Email)
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	require.Len(t, store.created, 1)
	assert.Equal(t, "Alice", store.created[0].TextValue)
}

func TestSubmitEntry_Validation(t *testing.T) {
	tests := []struct {
		name      string
		textValue string
		email     string
		want      string
	}{
		{"empty text", "", "alice@example.com", MsgTextValueEmpty},
		{"whitespace text", "   \t", "alice@example.com", MsgTextValueEmpty},
		{"empty text wins over bad email", "", "nope", MsgTextValueEmpty},
		{"empty email", "Bob", "", MsgEmailEmpty},
		{"whitespace email", "Bob", "   ", MsgEmailEmpty},
		{"no at sign", "Bob", "not-an-email", MsgEmailInvalid},
		{"no dot after at", "Bob", "bob@localhost", MsgEmailInvalid},
		{"dot only before at", "Bob", "bob.smith@example", MsgEmailInvalid},
		{"two at signs", "Bob", "bob@@example.com", MsgEmailInvalid},
		{"inner whitespace", "Bob", "bob smith@example.com", MsgEmailInvalid},
		{"inner no-break space", "Bob", "bob\u00a0smith@example.com", MsgEmailInvalid},
		{"em space before at", "Bob", "bob\u2003@example.com", MsgEmailInvalid},
		{"ideographic space in domain", "Bob", "bob@exa\u3000mple.com", MsgEmailInvalid},
		{"text too long", strings.Repeat("a", MaxTextValueLen+1), "bob@example.com", MsgTextValueTooLong},
		{"multibyte text too long", strings.Repeat("é", MaxTextValueLen+1), "bob@example.com", MsgTextValueTooLong},
		{"email too long", "Bob", strings.Repeat("b", MaxEmailLen) + "@example.com", MsgEmailTooLong},
		{"empty local part", "Bob", "@example.com", MsgEmailInvalid},
		{"trailing dot", "Bob", "bob@example.", MsgEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeEntryStore()
			svc := NewEntryService(store, zap.NewNop())

			_, err := svc.SubmitEntry(context.Background(), tt.textValue, tt.email)

			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Equal(t, tt.want, PublicMessage(err))
			assert.Empty(t, store.created)
		})
	}
}

func TestSubmitEntry_AcceptsPlausibleEmails(t *testing.T) {
	for _, email := range []string{
		"alice@example.com",
		"a.b+tag@sub.example.co.uk",
		"x@y.z",
		"UPPER@EXAMPLE.COM",
		"josé@bücher.de",
	} {
		t.Run(email, func(t *testing.T) {
			svc := NewEntryService(newFakeEntryStore(), zap.NewNop())
			entry, err := svc.SubmitEntry(context.Background(), "Name", email)
			require.NoError(t, err)
			assert.Equal(t, email, entry.Email)
		})
	}
}

func TestSubmitEntry_StoreFailureIsUnexpected(t *testing.T) {
	store := newFakeEntryStore()
	store.err = errStoreDown
	svc := NewEntryService(store, zap.NewNop())

	_, err := svc.SubmitEntry(context.Background(), "Alice", "alice@example.com")

	require.Error(t, err)
	assert.Equal(t, KindUnexpected, KindOf(err))
	assert.Equal(t, MsgUnexpected, PublicMessage(err))
	assert.ErrorIs(t, err, errStoreDown)
}

func TestSubmitEntry_LengthLimitCountsCharacters(t *testing.T) {
	store := newFakeEntryStore()
	svc := NewEntryService(store, zap.NewNop())

	// 255 two-byte characters fit a varchar(255) utf8mb4 column.
	name := strings.Repeat("é", MaxTextValueLen)
	entry, err := svc.SubmitEntry(context.Background(), name, "bob@example.com")

	require.NoError(t, err)
	assert.Equal(t, name, entry.TextValue)
	assert.Len(t, store.created, 1)
}
