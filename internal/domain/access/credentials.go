package access

import "time"

// TokenFresh indica si un token emitido en issuedAt sigue siendo confiable
// frente al último cambio de contraseña del usuario. Un token anterior al
// cambio queda invalidado sin necesidad de lista de revocación.
//
// Ambos instantes se comparan a granularidad de segundo porque el claim `iat`
// de JWT no conserva fracciones de segundo.
func TokenFresh(issuedAt time.Time, passwordChangedAt *time.Time) bool {
	if passwordChangedAt == nil {
		return true
	}
	return !issuedAt.Truncate(time.Second).Before(passwordChangedAt.Truncate(time.Second))
}
