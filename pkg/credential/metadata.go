package credential

import (
	"encoding/json"

	"github.com/hyperledger/aries-framework-go/pkg/storage"
	"github.com/pkg/errors"
)

const metadataStoreName = "anoncreds_metadata"

// ErrMissingMetadata is returned when a W3C record has no side table
// entry. This is distinct from a plain not-found: the record exists but
// was written without the metadata this scheme requires.
var ErrMissingMetadata = errors.New("missing credential metadata")

// Metadata is the side table entry kept per W3C credential record. The
// native representation carries these fields on the record itself.
type Metadata struct {
	MethodName             string `json:"methodName"`
	LinkSecretID           string `json:"linkSecretId"`
	CredentialRevocationID string `json:"credentialRevocationId,omitempty"`
}

// MetadataStore is the keyed side table holding per-record Metadata,
// backed by wallet storage.
type MetadataStore struct {
	store storage.Store
}

func NewMetadataStore(prov Provider) (*MetadataStore, error) {
	s, err := prov.StorageProvider().OpenStore(metadataStoreName)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open metadata store")
	}

	return &MetadataStore{store: s}, nil
}

// Get returns the metadata entry for a record, or ErrMissingMetadata if
// the record was never written with one.
func (r *MetadataStore) Get(recordID string) (*Metadata, error) {
	d, err := r.store.Get(recordID)
	if err == storage.ErrDataNotFound {
		return nil, errors.Wrapf(ErrMissingMetadata, "record %s", recordID)
	} else if err != nil {
		return nil, errors.Wrap(err, "unable to load credential metadata")
	}

	meta := &Metadata{}
	err = json.Unmarshal(d, meta)
	if err != nil {
		return nil, errors.Wrap(err, "invalid credential metadata record")
	}

	return meta, nil
}

// Put writes the metadata entry for a record.
func (r *MetadataStore) Put(recordID string, meta *Metadata) error {
	d, err := json.Marshal(meta)
	if err != nil {
		return errors.Wrap(err, "unable to marshal credential metadata")
	}

	err = r.store.Put(recordID, d)
	if err != nil {
		return errors.Wrap(err, "unable to save credential metadata")
	}

	return nil
}

// Delete removes the metadata entry for a record.
func (r *MetadataStore) Delete(recordID string) error {
	err := r.store.Delete(recordID)
	if err != nil {
		return errors.Wrap(err, "unable to delete credential metadata")
	}

	return nil
}
