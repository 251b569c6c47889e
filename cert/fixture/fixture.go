// SPDX-License-Identifier: ice License 1.0

package fixture

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	serialNumberBits = 128
	validity         = 24 * time.Hour
	localhost        = "localhost"
)

func NewECDSAKey(tb testing.TB, curve elliptic.Curve) *ecdsa.PrivateKey {
	tb.Helper()
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(tb, err)

	return key
}

func NewRSAKey(tb testing.TB, bits int) *rsa.PrivateKey {
	tb.Helper()
	key, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(tb, err)

	return key
}

// SelfSignedDER issues a self-signed certificate for localhost, signed by key.
func SelfSignedDER(tb testing.TB, key crypto.Signer) []byte {
	tb.Helper()
	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), serialNumberBits))
	require.NoError(tb, err)
	now := time.Now()
	template := x509.Certificate{
		SerialNumber:          serialNumber,
		Subject:               pkix.Name{Organization: []string{"quicbridge test"}},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              now.Add(validity),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{localhost},
		IPAddresses:           []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, key.Public(), key)
	require.NoError(tb, err)

	return der
}

// ServerTLSConfig builds a server side TLS config with a fresh P-256 certificate, advertising alpn.
func ServerTLSConfig(tb testing.TB, alpn ...string) *tls.Config {
	tb.Helper()
	key := NewECDSAKey(tb, elliptic.P256())

	return &tls.Config{
		Certificates: []tls.Certificate{{Certificate: [][]byte{SelfSignedDER(tb, key)}, PrivateKey: key}},
		NextProtos:   alpn,
		MinVersion:   tls.VersionTLS13,
	}
}

// ClientTLSConfig trusts whatever the server presents.
func ClientTLSConfig(alpn ...string) *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec // Test servers use throwaway self-signed certificates.
		ServerName:         localhost,
		NextProtos:         alpn,
		MinVersion:         tls.VersionTLS13,
	}
}
