package topology

const (
	credentialUsername  = "dbadmin"
	credentialSecretKey = "password"
)

// CredentialDescriptor instructs the external secret store to generate a
// credential for the data tier. It is a generation request, not a value: the
// plan never sees or stores the resolved secret, so no plaintext credential
// ever exists in a plan. Generated once per plan, never reused across plans.
type CredentialDescriptor struct {
	// Username is the fixed login name the secret is generated for.
	Username string
	// SecretKey is the key the generated secret is stored under.
	SecretKey string
	// ExcludePunctuation restricts the generated secret's alphabet.
	ExcludePunctuation bool
}

// ProvisionCredential derives the generation instruction for the data tier's
// admin credential.
func ProvisionCredential() CredentialDescriptor {
	return CredentialDescriptor{
		Username:           credentialUsername,
		SecretKey:          credentialSecretKey,
		ExcludePunctuation: true,
	}
}
