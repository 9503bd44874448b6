package catalog

import (
	"testing"

	"focusboard/internal/schema"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	tables []string
}

func (r *recorder) RegisterTableSchema(ts *schema.TableSchema) {
	r.tables = append(r.tables, ts.Name())
}

func TestRegister(t *testing.T) {
	r := &recorder{}
	Register(r)
	assert.ElementsMatch(t, []string{Tasks, Subtasks, Habits, HabitCompletions, Rewards, Progress}, r.tables)
}

func TestChildTablesCascadeToParents(t *testing.T) {
	assert.Equal(t, []schema.ForeignKey{{Column: "task_id", References: "tasks(id)"}}, SubtaskSchema().ForeignKeys())
	assert.Equal(t, []schema.ForeignKey{{Column: "habit_id", References: "habits(id)"}}, HabitCompletionSchema().ForeignKeys())
}

func TestPrimaryKeys(t *testing.T) {
	assert.Equal(t, "user_id", ProgressSchema().PrimaryKey())
	assert.False(t, ProgressSchema().HasColumn("user_id"), "progress key is synthesized")
	assert.False(t, HabitSchema().HasColumn("id"), "habit id is synthesized")

	clause, ok := RewardSchema().Column("id")
	assert.True(t, ok)
	assert.Equal(t, "TEXT", clause, "PRIMARY KEY is appended when the table is created")
}

func TestMigratedColumnsAreNotDeclared(t *testing.T) {
	assert.False(t, TaskSchema().HasColumn("tags"))
	assert.False(t, HabitSchema().HasColumn("target_date"))
}

func TestTaskOrders(t *testing.T) {
	_, ok := TaskOrders[DefaultTaskOrder]
	assert.True(t, ok, "default order must be listed")
	for name, clause := range TaskOrders {
		assert.NotEmpty(t, clause, name)
	}
}
