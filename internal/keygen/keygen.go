package keygen

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

// Алфавит domain key — как у исходной консоли: буквы, цифры и @#$%!.
const domainKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@#$%!"

const domainKeyLength = 8

// DomainKey генерирует 8-символьный публичный идентификатор домена.
// Коллизии здесь не обрабатываются: глобальную уникальность держит
// unique-индекс стора, повторный ключ всплывает как conflict.
func DomainKey() (string, error) {
	max := big.NewInt(int64(len(domainKeyAlphabet)))
	buf := make([]byte, domainKeyLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("domain key entropy: %w", err)
		}
		buf[i] = domainKeyAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// VAPIDKeyPair — ключи подписи web-push. Public — несжатая точка P-256
// (65 байт), Private — скаляр (32 байта), оба base64url без паддинга:
// ровно тот формат, который браузер принимает как applicationServerKey.
type VAPIDKeyPair struct {
	Public  string
	Private string
}

// VAPIDKeys генерирует свежую пару P-256.
func VAPIDKeys() (*VAPIDKeyPair, error) {
	sk, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("vapid keygen: %w", err)
	}
	pub := elliptic.Marshal(elliptic.P256(), sk.PublicKey.X, sk.PublicKey.Y)
	priv := sk.D.FillBytes(make([]byte, 32))
	return &VAPIDKeyPair{
		Public:  base64.RawURLEncoding.EncodeToString(pub),
		Private: base64.RawURLEncoding.EncodeToString(priv),
	}, nil
}

// VerificationToken — одноразовый токен для внешней проверки владения доменом.
func VerificationToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("verification token entropy: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
