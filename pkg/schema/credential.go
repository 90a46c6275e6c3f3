package schema

import (
	"encoding/json"
)

// Credential is a native anoncreds credential payload.
type Credential struct {
	SchemaID                  string           `json:"schema_id"`
	CredDefID                 string           `json:"cred_def_id"`
	RevRegID                  string           `json:"rev_reg_id,omitempty"`
	Signature                 json.RawMessage  `json:"signature"`
	SignatureCorrectnessProof json.RawMessage  `json:"signature_correctness_proof"`
	Values                    CredentialValues `json:"values"`
}

type CredentialValues map[string]*AttributeValue

// AttributeValue holds both forms of a claim value: the raw form shown to
// holders and used for search, and the encoded form committed to by the
// CL signature.
type AttributeValue struct {
	Raw     interface{} `json:"raw"`
	Encoded string      `json:"encoded"`
}
