package report

import (
	"encoding/json"
	"os"

	scruberrors "github.com/shadmazumder/jsonscrub/internal/errors"
)

// LoadJSON reads and decodes a JSON document into the generic
// map/slice/scalar form the sanitizer operates on.
func LoadJSON(path string) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, scruberrors.IOError("report.LoadJSON", path, err)
	}

	var data any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, scruberrors.ParseError("report.LoadJSON", path, err)
	}
	return data, nil
}

// VerifyEncodable round-trips the document through the JSON encoder and
// returns the encoded size. The sanitized tree must still be valid JSON
// before it is rendered.
func VerifyEncodable(data any) (int, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return 0, scruberrors.Wrap(scruberrors.KindRender, "report.VerifyEncodable", "sanitized document is not encodable", err)
	}
	return len(out), nil
}
