package suggest

// systemPrompt frames the task; the rendered user prompt carries the notes
// and historical context.
const systemPrompt = `You are an assistant that converts free-form work notes into structured timesheet entries, using the user's historical entries as the source of valid Project/Activity/WorkItem combinations.`

// defaultTemplate is the built-in suggestion prompt. {{today}}, {{notes}},
// {{shorthand}} and {{historical}} are substituted before the call; a user
// prompt override goes through the same substitution.
const defaultTemplate = `Analyze the following notes provided by the user. Each new line is a new time entry. Only return the best match for each line. If there is no date specified, use today's date: {{today}}. If a weekday is specified, use the date relative to today for that day.

Notes:
{{notes}}
{{shorthand}}
Using the historical data below (which does not include hours, as hours are not relevant for suggesting the Project, Activity, WorkItem, or Comment), suggest possible time entries. If there is not enough information, extrapolate based on historical data.

Historical Data:
{{historical}}

Return a JSON array of time entries that match the user notes. Each entry has the fields Date, Project, Activity, WorkItem, Hours and Comment. Make sure the "Hours" field is a number in .25 increments (suggest a reasonable number of hours based on the notes, e.g. default to 1 or 2 if not specified).
Ensure all entries match the historical data provided for Project, Activity, and WorkItem. This means a Project has specific Activities and Activities have specific work items; extrapolate only when needed.
Format your response as JSON. Do not include any additional text or markdown specifiers like ` + "```json or ```." + `

`

// shorthandSection wraps the user's glossary when one exists.
const shorthandSection = `
Consider the following user-defined shorthand/abbreviations when interpreting the notes:
{{glossary}}
`
