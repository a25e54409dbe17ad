package config

// ServiceAccount holds essential fields from the Firebase JSON key,
// used for signing storage download URLs.
type ServiceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}
