// Package export writes the viewer's visible records back out as JSON Lines.
package export

import (
	"bufio"
	"errors"
	"os"
)

// ToJSONL writes one raw record per line to path, creating or truncating it.
func ToJSONL(path string, records []string) error {
	if len(records) == 0 {
		return errors.New("no records")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	defer bw.Flush()
	for _, r := range records {
		if _, err := bw.WriteString(r); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}
