package series

import "github.com/ukaji3/faresnap-go/pkg/faresnap/models"

// Lookup returns the one record of ds matching key on FromCity, ToCity and Month.
// No match wraps models.ErrNoMatchingRow; several matches wrap models.ErrAmbiguousRow.
func Lookup(ds *models.Dataset, key models.Key) (*models.Record, error) {
	return ds.Find(key)
}
