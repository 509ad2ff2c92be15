package handler

// DI for all handlers alike.

import (
	"github.com/yumyai/geneplatter/pkg/model"
)

// AppContext carries the table built at startup. Handlers only read it.
type AppContext struct {
	Table  *model.FrequencyTable
	Source string // input file or matrix db the table came from
}

func NewAppContext(table *model.FrequencyTable, source string) *AppContext {
	if table == nil {
		table = &model.FrequencyTable{Years: []string{}, Genes: []string{}, Counts: [][]int{}}
	}
	return &AppContext{Table: table, Source: source}
}
