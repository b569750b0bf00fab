package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-offline-keeper/internal/crypto"
	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/internal/mock"
	"github.com/MKhiriev/go-offline-keeper/models"
)

func newMockedStorage(t *testing.T) (UsageStore, *mock.MockKeyChainService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	keyChain := mock.NewMockKeyChainService(ctrl)

	s, err := NewUsageFileStorage(t.TempDir(), keyChain, logger.Nop())
	require.NoError(t, err)

	return s, keyChain
}

func TestUsageFileStorage_Save_SaltError(t *testing.T) {
	s, keyChain := newMockedStorage(t)
	saltErr := errors.New("entropy exhausted")

	keyChain.EXPECT().GenerateSalt().Return(nil, saltErr)

	err := s.Save(context.Background(), models.NewCredential("alice", "pw"), sampleRecord())
	assert.ErrorIs(t, err, saltErr)
}

func TestUsageFileStorage_Save_SealError(t *testing.T) {
	s, keyChain := newMockedStorage(t)
	cred := models.NewCredential("alice", "pw")
	salt := make([]byte, crypto.SaltSize)
	sealErr := errors.New("cipher failure")

	keyChain.EXPECT().GenerateSalt().Return(salt, nil)
	keyChain.EXPECT().DeriveKeys(cred.String(), salt).Return(crypto.DerivedKeys{})
	keyChain.EXPECT().Seal(crypto.DerivedKeys{}, salt, gomock.Any()).Return(nil, sealErr)

	err := s.Save(context.Background(), cred, sampleRecord())
	assert.ErrorIs(t, err, sealErr)

	// nothing written on failure
	_, err = s.Load(context.Background(), cred)
	assert.ErrorIs(t, err, ErrRecordMissing)
}

// Open получает ровно то, что записал Save: соль отдельно, остальное целиком.
func TestUsageFileStorage_WritesSaltThenSealed(t *testing.T) {
	s, keyChain := newMockedStorage(t)
	cred := models.NewCredential("Bob", "pw")
	salt := []byte("0123456789abcdef")
	sealed := append(make([]byte, crypto.IVSize*3), make([]byte, crypto.TagSize)...)
	sealed[0] = 0x42

	keyChain.EXPECT().GenerateSalt().Return(salt, nil)
	keyChain.EXPECT().DeriveKeys("bob:pw", salt).Return(crypto.DerivedKeys{}).Times(2)
	keyChain.EXPECT().Seal(crypto.DerivedKeys{}, salt, gomock.Len(recordPayloadSize)).Return(sealed, nil)
	keyChain.EXPECT().Open(crypto.DerivedKeys{}, salt, sealed).Return(nil, crypto.ErrAuthenticationFailed)

	require.NoError(t, s.Save(context.Background(), cred, sampleRecord()))

	blob, err := os.ReadFile(s.(*usageFileStorage).recordPath(cred))
	require.NoError(t, err)
	assert.Equal(t, append(append([]byte{}, salt...), sealed...), blob)

	_, err = s.Load(context.Background(), cred)
	assert.ErrorIs(t, err, ErrRecordCorrupted)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestUsageFileStorage_Load_CancelledBeforeDerivation(t *testing.T) {
	s, _ := newMockedStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// no keychain call is expected
	_, err := s.Load(ctx, models.NewCredential("alice", "pw"))
	assert.ErrorIs(t, err, context.Canceled)
}
