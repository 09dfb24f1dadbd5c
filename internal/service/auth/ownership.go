package auth

// CheckOwnership reports whether the authenticated caller may read data
// owned by email. The comparison is exact; no case folding is applied.
// Returns ErrAccessDenied when claims is nil or the emails differ.
func CheckOwnership(claims *Claims, email string) error {
	if claims == nil || claims.Email == "" || claims.Email != email {
		return ErrAccessDenied
	}
	return nil
}
