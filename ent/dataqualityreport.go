// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/dataqualityreport"
)

// DataQualityReport is the model entity for the DataQualityReport schema.
type DataQualityReport struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy dataqualityreport.TriggeredBy `json:"triggered_by,omitempty"`
	// Metrics holds the value of the "metrics" field.
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// Issues holds the value of the "issues" field.
	Issues []map[string]interface{} `json:"issues,omitempty"`
	// Resolutions holds the value of the "resolutions" field.
	Resolutions []map[string]interface{} `json:"resolutions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataQualityReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dataqualityreport.FieldMetrics, dataqualityreport.FieldIssues, dataqualityreport.FieldResolutions:
			values[i] = new([]byte)
		case dataqualityreport.FieldID, dataqualityreport.FieldTriggeredBy:
			values[i] = new(sql.NullString)
		case dataqualityreport.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataQualityReport fields.
func (_m *DataQualityReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dataqualityreport.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dataqualityreport.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = dataqualityreport.TriggeredBy(value.String)
			}
		case dataqualityreport.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case dataqualityreport.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		case dataqualityreport.FieldResolutions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resolutions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Resolutions); err != nil {
					return fmt.Errorf("unmarshal field resolutions: %w", err)
				}
			}
		case dataqualityreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DataQualityReport.
// This includes values selected through modifiers, order, etc.
func (_m *DataQualityReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DataQualityReport.
// Note that you need to call DataQualityReport.Unwrap() before calling this method if this DataQualityReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DataQualityReport) Update() *DataQualityReportUpdateOne {
	return NewDataQualityReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DataQualityReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DataQualityReport) Unwrap() *DataQualityReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataQualityReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DataQualityReport) String() string {
	var builder strings.Builder
	builder.WriteString("DataQualityReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("triggered_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggeredBy))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.Issues))
	builder.WriteString(", ")
	builder.WriteString("resolutions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolutions))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DataQualityReports is a parsable slice of DataQualityReport.
type DataQualityReports []*DataQualityReport
