package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raphaelgruber/rolemodel-curate/internal/models"
)

// RecordExt is the file extension of persisted records.
const RecordExt = ".json"

// FileName returns the record file name for key and number:
// <subject>_<number>_<operator>.json.
func FileName(key models.SequenceKey, number int) (string, error) {
	if key.Subject == "" || key.Operator == "" || number < 1 {
		return "", fmt.Errorf("%w: subject=%q operator=%q number=%d", ErrInvalidKey, key.Subject, key.Operator, number)
	}
	if models.SanitizeName(key.Subject) != key.Subject || models.SanitizeName(key.Operator) != key.Operator {
		return "", fmt.Errorf("%w: subject=%q operator=%q", ErrInvalidKey, key.Subject, key.Operator)
	}
	return key.Subject + "_" + strconv.Itoa(number) + "_" + key.Operator + RecordExt, nil
}

// ParseFileName splits a record file name into its sequence key and
// number. Names with the wrong extension, the wrong number of segments, or
// a sequence segment that is not a positive integer are rejected.
func ParseFileName(name string) (models.SequenceKey, int, error) {
	base, ok := strings.CutSuffix(name, RecordExt)
	if !ok {
		return models.SequenceKey{}, 0, fmt.Errorf("%w: %s", ErrNotRecordName, name)
	}
	parts := strings.Split(base, "_")
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return models.SequenceKey{}, 0, fmt.Errorf("%w: %s", ErrNotRecordName, name)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 1 {
		return models.SequenceKey{}, 0, fmt.Errorf("%w: %s", ErrNotRecordName, name)
	}
	return models.SequenceKey{Subject: parts[0], Operator: parts[2]}, n, nil
}
