// Package breakdown aggregates the latest reported progress per task by
// discipline. Tasks without a recorded discipline land in the
// "Non spécifié" bucket rather than being dropped.
package breakdown

import (
	"sort"

	"github.com/chantier-labs/avancement/internal/schedule"
	"github.com/chantier-labs/avancement/pkg/dateutil"
	"github.com/chantier-labs/avancement/pkg/mathutil"
)

// meanDecimals is the rounding precision for the per-bucket mean.
const meanDecimals = 1

// percentScale expresses bucket means on the 0-100 scale.
const percentScale = 100.0

// Bucket is the aggregate for one discipline.
type Bucket struct {
	// Discipline is the bucket label.
	Discipline string `yaml:"discipline" json:"discipline"`

	// MeanProgress is the mean of the latest per-task progress values, in
	// percent, rounded to one decimal.
	MeanProgress float64 `yaml:"mean_progress" json:"mean_progress"`

	// TaskCount is the number of distinct reported tasks in the bucket.
	TaskCount int `yaml:"task_count" json:"task_count"`
}

// Compute joins the latest report per task with the task's discipline and
// aggregates per bucket. Only tasks with at least one report contribute;
// reports for task IDs absent from the schedule fall into the default
// bucket. Buckets are sorted by label for deterministic output.
func Compute(tasks []schedule.Task, reports []schedule.Report) []Bucket {
	latest := latestReportPerTask(reports)
	if len(latest) == 0 {
		return nil
	}

	disciplineByID := make(map[string]string, len(tasks))
	for _, t := range tasks {
		disciplineByID[t.ID] = t.DisciplineOrDefault()
	}

	values := make(map[string][]float64)

	for taskID, r := range latest {
		discipline, ok := disciplineByID[taskID]
		if !ok {
			discipline = schedule.DefaultDiscipline
		}

		values[discipline] = append(values[discipline], r.NormalizedProgress()*percentScale)
	}

	buckets := make([]Bucket, 0, len(values))
	for discipline, vals := range values {
		buckets = append(buckets, Bucket{
			Discipline:   discipline,
			MeanProgress: mathutil.RoundTo(mathutil.Mean(vals), meanDecimals),
			TaskCount:    len(vals),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Discipline < buckets[j].Discipline
	})

	return buckets
}

// latestReportPerTask picks the most recent report per task ID. On equal
// dates the later record in input order wins, matching incremental-update
// semantics.
func latestReportPerTask(reports []schedule.Report) map[string]schedule.Report {
	latest := make(map[string]schedule.Report)

	for _, r := range reports {
		current, ok := latest[r.TaskID]
		if !ok || !dateutil.Day(r.Date).Before(dateutil.Day(current.Date)) {
			latest[r.TaskID] = r
		}
	}

	return latest
}
