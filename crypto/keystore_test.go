package crypto

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadKeystoreRoundTrip(t *testing.T) {
	key, err := GeneratePrivateKey()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "keystore", "operator.json")
	require.NoError(t, SaveToKeystore(path, key, "correct horse battery staple"))

	loaded, err := LoadFromKeystore(path, "correct horse battery staple")
	require.NoError(t, err)
	require.Equal(t, key.Bytes(), loaded.Bytes())
}

func TestLoadFromKeystoreRejectsWrongPassphrase(t *testing.T) {
	key, err := GeneratePrivateKey()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "keystore", "operator.json")
	require.NoError(t, SaveToKeystore(path, key, "correct horse battery staple"))

	_, err = LoadFromKeystore(path, "wrong passphrase")
	require.Error(t, err)
}

func TestSaveToKeystoreRejectsNilKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore", "operator.json")
	require.Error(t, SaveToKeystore(path, nil, "pass"))
}
