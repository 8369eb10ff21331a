package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobradar"

const (
	adzunaIDAccount  = "adzuna_app_id"
	adzunaKeyAccount = "adzuna_app_key"
)

// AdzunaCredentials resolves the API app id/key: environment first (dotenv
// friendly), keychain second. Both must resolve or the API source can't run.
func AdzunaCredentials() (appID, appKey string, err error) {
	appID = fromEnvOrKeyring("ADZUNA_APP_ID", adzunaIDAccount)
	appKey = fromEnvOrKeyring("ADZUNA_APP_KEY", adzunaKeyAccount)
	if appID == "" || appKey == "" {
		return "", "", errors.New("adzuna credentials not found (set ADZUNA_APP_ID/ADZUNA_APP_KEY or store them in the keychain)")
	}
	return appID, appKey, nil
}

// SetAdzunaCredentials stores the pair in the keychain.
func SetAdzunaCredentials(appID, appKey string) error {
	if strings.TrimSpace(appID) == "" || strings.TrimSpace(appKey) == "" {
		return errors.New("app id and app key must both be non-empty")
	}
	if err := keyring.Set(KeyringService, adzunaIDAccount, appID); err != nil {
		return err
	}
	return keyring.Set(KeyringService, adzunaKeyAccount, appKey)
}

func fromEnvOrKeyring(envKey, account string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if v, err := keyring.Get(KeyringService, account); err == nil {
		return strings.TrimSpace(v)
	}
	return ""
}
