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

// Package format renders registry content as plain text tables and splits
// long messages into chunks.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/mltemplate/mltemplate/pkg/types"
)

// MaxMessageLength is the maximum length of one chunk.
const MaxMessageLength = 2000

// Chunk splits text into consecutive pieces of at most size runes. Empty text
// yields a single empty chunk.
func Chunk(text string, size int) []string {
	if size <= 0 {
		size = MaxMessageLength
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}

		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}

// ModelTable renders models as a fenced table.
func ModelTable(models []types.ModelRecord, testAccuracyHeader string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```%-12s %-12s %-12s %-15s %-30s\n", "Model", "Version", "Dataset", testAccuracyHeader, "Run ID")
	for _, model := range models {
		fmt.Fprintf(&b, "%-12s %-12s %-12s %.4f%9s %-30s\n", model.Name, model.Version, model.Dataset, model.TestAcc, "", model.RunID)
	}
	b.WriteString("```\n")

	return b.String()
}

// ModelSummary renders all models followed by the best model of each experiment.
func ModelSummary(models, best []types.ModelRecord) string {
	if len(models) == 0 {
		return "The registry is empty."
	}

	var b strings.Builder
	b.WriteString("All models in the registry:\n")
	b.WriteString(ModelTable(models, "Test Accuracy"))
	b.WriteString("The best model for each experiment:\n")
	b.WriteString(ModelTable(best, "TestAccuracy"))

	return b.String()
}

// ExperimentsTable renders experiments with their ids.
func ExperimentsTable(experiments []types.ExperimentRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```%-12s %-32s\n", "Experiment", "Experiment ID")
	for _, experiment := range experiments {
		fmt.Fprintf(&b, "%-12s %-32s\n", experiment.Name, experiment.ID)
	}
	b.WriteString("```")

	return b.String()
}

// ModelVersionsTable renders registered model versions.
func ModelVersionsTable(versions []types.ModelVersionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```%-12s %-12s %-32s\n", "Model", "Version", "Run ID")
	for _, version := range versions {
		fmt.Fprintf(&b, "%-12s %-12s %-32s\n", version.Model, version.Version, version.RunID)
	}
	b.WriteString("```")

	return b.String()
}

// RunsTable renders runs with their epoch accuracies.
func RunsTable(runs []types.RunRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```%-32s %-15s %-15s %-15s\n", "Run ID", "Train Accuracy", "Val Accuracy", "Test Accuracy")
	for _, run := range runs {
		fmt.Fprintf(&b, "%-32s %-15.4f %-15.4f %-15.4f\n", run.RunID,
			run.Metrics["train_acc_epoch"], run.Metrics["val_acc_epoch"], run.Metrics["test_acc_epoch"])
	}
	b.WriteString("```")

	return b.String()
}

// Classification renders a classification result, label is omitted when nil.
func Classification(label *int, prediction int, logits [][]float32) string {
	var b strings.Builder
	b.WriteString("```")
	if label != nil {
		fmt.Fprintf(&b, "Label: %d\n", *label)
	}
	fmt.Fprintf(&b, "Prediction: %d\n", prediction)
	b.WriteString("Logits: [")
	if len(logits) > 0 {
		for _, logit := range logits[0] {
			fmt.Fprintf(&b, "%.4f ", logit)
		}
	}
	b.WriteString("]```")

	return b.String()
}

// ExperimentStat summarizes test accuracies of one experiment.
type ExperimentStat struct {
	ExperimentID string
	Count        int
	Mean         float64
	Median       float64
	Max          float64
}

// ExperimentStats computes test accuracy statistics per experiment, ordered by experiment id.
func ExperimentStats(models []types.ModelRecord) ([]ExperimentStat, error) {
	accuracies := map[string][]float64{}
	for _, model := range models {
		accuracies[model.ExperimentID] = append(accuracies[model.ExperimentID], model.TestAcc)
	}

	result := make([]ExperimentStat, 0, len(accuracies))
	for id, data := range accuracies {
		mean, err := stats.Mean(data)
		if err != nil {
			return nil, err
		}

		median, err := stats.Median(data)
		if err != nil {
			return nil, err
		}

		best, err := stats.Max(data)
		if err != nil {
			return nil, err
		}

		result = append(result, ExperimentStat{
			ExperimentID: id,
			Count:        len(data),
			Mean:         mean,
			Median:       median,
			Max:          best,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ExperimentID < result[j].ExperimentID
	})

	return result, nil
}

// StatsTable renders experiment statistics, naming experiments when known.
func StatsTable(experimentStats []ExperimentStat, names map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```%-12s %-8s %-10s %-10s %-10s\n", "Experiment", "Models", "Mean", "Median", "Best")
	for _, stat := range experimentStats {
		name := names[stat.ExperimentID]
		if name == "" {
			name = stat.ExperimentID
		}

		fmt.Fprintf(&b, "%-12s %-8d %-10.4f %-10.4f %-10.4f\n", name, stat.Count, stat.Mean, stat.Median, stat.Max)
	}
	b.WriteString("```")

	return b.String()
}
