/*
 *     Copyright 2024 The Mltemplate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/mltemplate/mltemplate/client/config"
)

// ErrCSVNotSupported is returned when csv output is requested for anything but models.
var ErrCSVNotSupported = errors.New("csv output is only supported by models")

// printer writes results in the configured output format.
type printer struct {
	w      io.Writer
	output string
}

func newPrinter(w io.Writer, output string) *printer {
	return &printer{w: w, output: output}
}

// print writes v as json, or the table rendered by table.
func (p *printer) print(v any, table func() string) error {
	switch p.output {
	case config.OutputJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputCSV:
		return ErrCSVNotSupported
	default:
		_, err := fmt.Fprintln(p.w, plain(table()))
		return err
	}
}

// printRecords is print with csv support for records carrying csv tags.
func (p *printer) printRecords(records any, table func() string) error {
	if p.output == config.OutputCSV {
		return gocsv.Marshal(records, p.w)
	}

	return p.print(records, table)
}

// printText writes chunks of text one after another.
func (p *printer) printText(chunks ...string) error {
	for _, chunk := range chunks {
		if _, err := fmt.Fprintln(p.w, plain(chunk)); err != nil {
			return err
		}
	}

	return nil
}

// plain removes the code fences of chat formatted tables.
func plain(s string) string {
	return strings.TrimRight(strings.ReplaceAll(s, "```", ""), "\n")
}
