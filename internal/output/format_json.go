package output

import (
	"github.com/fireplan/fireplan/internal/domain"
	"github.com/goccy/go-json"
)

// JSONFormatter formats a projection as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a projection.
func (jf *JSONFormatter) Format(proj *domain.Projection) (string, error) {
	var (
		data []byte
		err  error
	)
	if jf.Pretty {
		data, err = json.MarshalIndent(proj, "", "  ")
	} else {
		data, err = json.Marshal(proj)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
