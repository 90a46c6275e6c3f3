/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrMalformedSubject is returned when a credential subject is a sequence
// rather than a single structured object. Multi-subject credentials cannot
// be indexed or projected by attribute name.
var ErrMalformedSubject = errors.New("malformed credential subject")

// W3CCredential is a W3C verifiable credential document. The proof is
// opaque to this layer and preserved as raw JSON.
type W3CCredential struct {
	Context           []string        `json:"@context"`
	ID                string          `json:"id,omitempty"`
	Types             []string        `json:"type"`
	Issuer            string          `json:"issuer"`
	IssuanceDate      string          `json:"issuanceDate,omitempty"`
	CredentialSubject json.RawMessage `json:"credentialSubject"`
	Proof             json.RawMessage `json:"proof,omitempty"`
}

// SubjectClaims returns the claim set of the credential subject, minus the
// subject's own id. Returns ErrMalformedSubject if the subject is a JSON
// array instead of a single object.
func (r *W3CCredential) SubjectClaims() (map[string]interface{}, error) {
	if len(r.CredentialSubject) == 0 {
		return nil, errors.Wrap(ErrMalformedSubject, "credential has no subject")
	}

	subject := map[string]interface{}{}
	err := json.Unmarshal(r.CredentialSubject, &subject)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedSubject, "credential subject is not a single object")
	}

	delete(subject, "id")
	return subject, nil
}

// SubjectID returns the id of the credential subject, if one is set.
func (r *W3CCredential) SubjectID() string {
	subject := struct {
		ID string `json:"id"`
	}{}
	err := json.Unmarshal(r.CredentialSubject, &subject)
	if err != nil {
		return ""
	}

	return subject.ID
}
