package airtable

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const MaxPageSize = 100

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

type Sort struct {
	Field     string        `validate:"required"`
	Direction SortDirection `validate:"omitempty,oneof=asc desc"`
}

type ListParameters struct {
	FilterByFormula string
	Sort            []Sort `validate:"dive"`
	Fields          []string
	PageSize        int `validate:"gte=0,lte=100"`
	MaxRecords      int `validate:"gte=0"`
	Offset          string
}

var validate = validator.New()

func (p ListParameters) Validate() error {
	return validate.Struct(p)
}

func (p ListParameters) ToUrlParams() url.Values {

	params := url.Values{}

	if p.FilterByFormula != "" {
		params.Add("filterByFormula", p.FilterByFormula)
	}

	for i, sort := range p.Sort {
		params.Add(fmt.Sprintf("sort[%d][field]", i), sort.Field)
		if sort.Direction != "" {
			params.Add(fmt.Sprintf("sort[%d][direction]", i), string(sort.Direction))
		}
	}

	for _, field := range p.Fields {
		params.Add("fields[]", field)
	}

	if p.PageSize != 0 {
		params.Add("pageSize", strconv.Itoa(p.PageSize))
	}

	if p.MaxRecords != 0 {
		params.Add("maxRecords", strconv.Itoa(p.MaxRecords))
	}

	if p.Offset != "" {
		params.Add("offset", p.Offset)
	}

	return params
}
