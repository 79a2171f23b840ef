package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedRecord is the rescue history stored on disk
type SavedRecord struct {
	Rescues       int     `json:"rescues"`
	Deaths        int     `json:"deaths"`
	FastestRescue float64 `json:"fastestRescue"` // seconds, 0 when unset
}

// itemStore is the part of gdata.Manager used for records.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const recordKey = "record"

var recordStore itemStore

// InitPersistence opens the gdata storage for appName
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	recordStore = m
	return nil
}

// LoadRecord returns the stored record, or nil when there is none or
// persistence is unavailable.
func LoadRecord() *SavedRecord {
	if recordStore == nil {
		return nil
	}

	data, err := recordStore.LoadItem(recordKey)
	if err != nil {
		log.Printf("Warning: Could not load record: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse saved record: %v", err)
		return nil
	}
	return &record
}

// RecordRescue adds one rescue to the stored record and returns the result.
func RecordRescue(deaths int, seconds float64) *SavedRecord {
	record := LoadRecord()
	if record == nil {
		record = &SavedRecord{}
	}
	record.Rescues++
	record.Deaths += deaths
	if record.FastestRescue == 0 || seconds < record.FastestRescue {
		record.FastestRescue = seconds
	}

	if recordStore == nil {
		return record
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("Warning: Could not serialize record: %v", err)
		return record
	}
	if err := recordStore.SaveItem(recordKey, data); err != nil {
		log.Printf("Warning: Could not save record: %v", err)
	}
	return record
}
