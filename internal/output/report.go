package output

import (
	"fmt"
	"os"

	"github.com/fireplan/fireplan/internal/domain"
)

// GenerateReport writes a projection to stdout in the requested format.
func GenerateReport(proj *domain.Projection, format string) error {
	switch format {
	case "console":
		fmt.Fprint(os.Stdout, (&ConsoleFormatter{}).Format(proj))
		return nil
	case "json":
		out, err := (&JSONFormatter{Pretty: true}).Format(proj)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, out)
		return nil
	case "csv":
		out, err := (&CSVFormatter{}).Format(proj)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, out)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
