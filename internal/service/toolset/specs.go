package toolset

import (
	"encoding/json"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/provider"
)

// Specs returns the tool definitions advertised to the model. The names must
// match the cases in Bound.Execute.
func Specs() []provider.ToolSpec {
	return []provider.ToolSpec{
		{
			Name: "list_tasks",
			Description: "Retrieve all tasks for the user with their completion status. " +
				"Use this when the user wants to see their tasks, check what they need to do, " +
				"or inquire about their task list. " +
				"Examples: 'show my tasks', 'what do I need to do', 'list my todos'.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"required": []
			}`),
		},
		{
			Name: "create_task",
			Description: "Create a new task for the user. " +
				"Use this when the user wants to add a task, reminder, or todo item. " +
				"Examples: 'remind me to X', 'add task X', 'I need to X'.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"title": {
						"type": "string",
						"description": "The task title or main description (required, 1-200 characters)"
					},
					"description": {
						"type": "string",
						"description": "Additional details or notes about the task (optional, max 2000 characters)"
					}
				},
				"required": ["title"]
			}`),
		},
		{
			Name: "get_task",
			Description: "Retrieve the details of one specific task by its ID. " +
				"Use this when the user refers to a particular task and you need its current state.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"task_id": {
						"type": "string",
						"description": "The ID of the task to retrieve"
					}
				},
				"required": ["task_id"]
			}`),
		},
		{
			Name: "update_task",
			Description: "Update an existing task's title or description. " +
				"Use this when the user wants to modify, change, or edit a task. " +
				"Examples: 'change X to Y', 'rename X to Y', 'add details to the task'.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"task_id": {
						"type": "string",
						"description": "The ID of the task to update"
					},
					"title": {
						"type": "string",
						"description": "New task title (optional, 1-200 characters)"
					},
					"description": {
						"type": "string",
						"description": "New task description (optional, max 2000 characters)"
					}
				},
				"required": ["task_id"]
			}`),
		},
		{
			Name: "mark_complete",
			Description: "Toggle the completion status of a task (mark as complete or incomplete). " +
				"Use this when the user indicates they finished a task or wants to undo that. " +
				"Examples: 'I finished X', 'mark X as done', 'actually X is not done yet'.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"task_id": {
						"type": "string",
						"description": "The ID of the task to toggle"
					}
				},
				"required": ["task_id"]
			}`),
		},
		{
			Name: "delete_task",
			Description: "Permanently delete a task. " +
				"Use this when the user wants to remove, delete, or cancel a task. " +
				"Examples: 'delete X', 'remove the task', 'get rid of X'.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"task_id": {
						"type": "string",
						"description": "The ID of the task to delete"
					}
				},
				"required": ["task_id"]
			}`),
		},
	}
}
