// SPDX-License-Identifier: ice License 1.0

package cert

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"

	"github.com/ice-blockchain/quicbridge/terror"
)

// ParseDER decodes a single DER encoded X.509 certificate.
// Anything that is not exactly one well-formed certificate, trailing bytes included, is rejected.
func ParseDER(der []byte) (*x509.Certificate, error) {
	if len(der) == 0 {
		return nil, terror.WithDetail(ErrMalformedCertificate, "empty certificate")
	}
	certificate, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, terror.WithDetail(ErrMalformedCertificate, "%v", err)
	}

	return certificate, nil
}

// DeduceSignatureAlgorithm picks the TLS signature scheme the key is allowed to sign with.
// Only ECDSA keys on P-256 and RSA keys between 1024 and 4096 bits are usable.
func DeduceSignatureAlgorithm(pub crypto.PublicKey) (tls.SignatureScheme, error) {
	switch key := pub.(type) {
	case *ecdsa.PublicKey:
		if key == nil || key.Curve == nil {
			return 0, terror.WithDetail(ErrUnsupportedKey, "empty ECDSA key")
		}
		if key.Curve != elliptic.P256() {
			return 0, terror.WithDetail(ErrUnsupportedKey, "only P-256 ECDSA keys are supported, got %v", key.Curve.Params().Name)
		}

		return tls.ECDSAWithP256AndSHA256, nil
	case *rsa.PublicKey:
		if key == nil || key.N == nil {
			return 0, terror.WithDetail(ErrUnsupportedKey, "empty RSA key")
		}
		if bits := key.N.BitLen(); bits < minRSAKeyBits || bits > maxRSAKeyBits {
			return 0, terror.WithDetail(ErrUnsupportedKey,
				"RSA key size must be between %v and %v bits, got %v", minRSAKeyBits, maxRSAKeyBits, bits)
		}

		return tls.PSSWithSHA256, nil
	default:
		return 0, terror.WithDetail(ErrUnsupportedKey, "only RSA and ECDSA keys are supported, got %T", pub)
	}
}

// DeduceLeafSignatureAlgorithm parses the leaf certificate and deduces the scheme of its public key.
func DeduceLeafSignatureAlgorithm(der []byte) (tls.SignatureScheme, error) {
	certificate, err := ParseDER(der)
	if err != nil {
		return 0, err
	}

	return DeduceSignatureAlgorithm(certificate.PublicKey)
}
