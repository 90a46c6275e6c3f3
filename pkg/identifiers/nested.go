package identifiers

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/scoir/corral/pkg/schema"
)

// The rewrites below qualify or unqualify every identifier field nested
// inside a definition object. They always return a copy and leave the
// caller's value untouched.

// QualifySchema returns a copy of s with its issuer ID qualified under
// namespace.
func QualifySchema(s *schema.Schema, namespace string) (*schema.Schema, error) {
	out := *s
	out.AttrNames = append([]string(nil), s.AttrNames...)

	issuerID, err := QualifyDID(s.IssuerID, namespace)
	if err != nil {
		return nil, errors.Wrap(err, "unable to qualify schema issuer ID")
	}
	out.IssuerID = issuerID

	return &out, nil
}

// UnqualifySchema returns a copy of s with its issuer ID in unqualified
// form.
func UnqualifySchema(s *schema.Schema) (*schema.Schema, error) {
	out := *s
	out.AttrNames = append([]string(nil), s.AttrNames...)

	issuerID, err := UnqualifyDID(s.IssuerID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to unqualify schema issuer ID")
	}
	out.IssuerID = issuerID

	return &out, nil
}

// QualifyCredentialDefinition returns a copy of cd with its issuer and
// schema IDs qualified under namespace.
func QualifyCredentialDefinition(cd *schema.CredentialDefinition, namespace string) (*schema.CredentialDefinition, error) {
	out := *cd
	out.Value = append(json.RawMessage(nil), cd.Value...)

	issuerID, err := QualifyDID(cd.IssuerID, namespace)
	if err != nil {
		return nil, errors.Wrap(err, "unable to qualify cred def issuer ID")
	}
	out.IssuerID = issuerID

	schemaID, err := QualifySchemaID(cd.SchemaID, namespace)
	if err != nil {
		return nil, errors.Wrap(err, "unable to qualify cred def schema ID")
	}
	out.SchemaID = schemaID

	return &out, nil
}

// UnqualifyCredentialDefinition returns a copy of cd with its issuer and
// schema IDs in unqualified form.
func UnqualifyCredentialDefinition(cd *schema.CredentialDefinition) (*schema.CredentialDefinition, error) {
	out := *cd
	out.Value = append(json.RawMessage(nil), cd.Value...)

	issuerID, err := UnqualifyDID(cd.IssuerID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to unqualify cred def issuer ID")
	}
	out.IssuerID = issuerID

	schemaID, err := UnqualifySchemaID(cd.SchemaID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to unqualify cred def schema ID")
	}
	out.SchemaID = schemaID

	return &out, nil
}

// QualifyRevocationRegistryDefinition returns a copy of rr with its issuer
// and cred def IDs qualified under namespace.
func QualifyRevocationRegistryDefinition(rr *schema.RevocationRegistryDefinition, namespace string) (*schema.RevocationRegistryDefinition, error) {
	out := *rr
	out.Value = append(json.RawMessage(nil), rr.Value...)

	issuerID, err := QualifyDID(rr.IssuerID, namespace)
	if err != nil {
		return nil, errors.Wrap(err, "unable to qualify rev reg issuer ID")
	}
	out.IssuerID = issuerID

	credDefID, err := QualifyCredentialDefinitionID(rr.CredDefID, namespace)
	if err != nil {
		return nil, errors.Wrap(err, "unable to qualify rev reg cred def ID")
	}
	out.CredDefID = credDefID

	return &out, nil
}

// UnqualifyRevocationRegistryDefinition returns a copy of rr with its
// issuer and cred def IDs in unqualified form.
func UnqualifyRevocationRegistryDefinition(rr *schema.RevocationRegistryDefinition) (*schema.RevocationRegistryDefinition, error) {
	out := *rr
	out.Value = append(json.RawMessage(nil), rr.Value...)

	issuerID, err := UnqualifyDID(rr.IssuerID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to unqualify rev reg issuer ID")
	}
	out.IssuerID = issuerID

	credDefID, err := UnqualifyCredentialDefinitionID(rr.CredDefID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to unqualify rev reg cred def ID")
	}
	out.CredDefID = credDefID

	return &out, nil
}
