package models

import "time"

// Parameter is a measurable machine property with its allowed range
type Parameter struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Description  *string   `json:"description"`
	DataType     string    `json:"dataType"`
	Unit         *string   `json:"unit"`
	MinValue     *float64  `json:"minValue"`
	MaxValue     *float64  `json:"maxValue"`
	DefaultValue *string   `json:"defaultValue"`
	IsRequired   bool      `json:"isRequired"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetID returns the parameter ID
func (p *Parameter) GetID() int { return p.ID }

// SetID sets the parameter ID
func (p *Parameter) SetID(id int) { p.ID = id }

// ParameterRequest is the body of parameter create and update requests
type ParameterRequest struct {
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	Description  *string  `json:"description"`
	DataType     string   `json:"dataType"`
	Unit         *string  `json:"unit"`
	MinValue     *float64 `json:"minValue"`
	MaxValue     *float64 `json:"maxValue"`
	DefaultValue *string  `json:"defaultValue"`
	IsRequired   bool     `json:"isRequired"`
}

// QualifiedValue names a band of a parameter's range, e.g. "High" for 61..85
type QualifiedValue struct {
	ID          int      `json:"id"`
	ParameterID int      `json:"parameterId"`
	Value       string   `json:"value"`
	MinValue    *float64 `json:"minValue"`
	MaxValue    *float64 `json:"maxValue"`
}

// GetID returns the qualified value ID
func (q *QualifiedValue) GetID() int { return q.ID }

// SetID sets the qualified value ID
func (q *QualifiedValue) SetID(id int) { q.ID = id }
