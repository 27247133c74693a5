package repository

import (
	"fmt"
	"strings"

	"github.com/Raymond9734/customer-records-backend/internal/models"
)

const customerListSelect = `
		SELECT c.id, c.first_name, c.last_name, c.phone_number,
		       STRING_AGG(a.city, ',' ORDER BY a.id) AS cities,
		       STRING_AGG(a.state, ',' ORDER BY a.id) AS states,
		       STRING_AGG(a.pin_code, ',' ORDER BY a.id) AS pin_codes
		FROM customers c
		LEFT JOIN addresses a ON c.id = a.customer_id`

const customerListCount = `
		SELECT COUNT(DISTINCT c.id)
		FROM customers c
		LEFT JOIN addresses a ON c.id = a.customer_id`

// sortColumns whitelists the ORDER BY expressions; city and state sort by the
// aggregated value so each customer still appears once.
var sortColumns = map[string]string{
	models.SortFirstName:   "c.first_name",
	models.SortLastName:    "c.last_name",
	models.SortPhoneNumber: "c.phone_number",
	models.SortCity:        "cities",
	models.SortState:       "states",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// listQuery is one page of the customer list and its matching count. Both
// statements share the same WHERE clause and filter arguments.
type listQuery struct {
	DataSQL   string
	DataArgs  []any
	CountSQL  string
	CountArgs []any
}

// buildListQuery assembles the filtered, sorted and paginated customer list.
// Every filter value is bound as a positional parameter.
func buildListQuery(filter models.CustomerFilter) listQuery {
	filter.Normalize()

	var conditions []string
	var args []any
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(c.first_name ILIKE $%d OR c.last_name ILIKE $%d OR c.phone_number ILIKE $%d)",
			argPos, argPos, argPos,
		))
		args = append(args, containsPattern(filter.Search))
		argPos++
	}

	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("a.city ILIKE $%d", argPos))
		args = append(args, containsPattern(filter.City))
		argPos++
	}

	if filter.State != "" {
		conditions = append(conditions, fmt.Sprintf("a.state ILIKE $%d", argPos))
		args = append(args, containsPattern(filter.State))
		argPos++
	}

	if filter.PinCode != "" {
		conditions = append(conditions, fmt.Sprintf("a.pin_code ILIKE $%d", argPos))
		args = append(args, containsPattern(filter.PinCode))
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}

	dataSQL := customerListSelect + whereClause + fmt.Sprintf(`
		GROUP BY c.id
		ORDER BY %s %s, c.id ASC
		LIMIT $%d OFFSET $%d`,
		sortColumns[filter.SortBy], filter.Order, argPos, argPos+1,
	)

	countArgs := append([]any{}, args...)
	dataArgs := append(args, filter.Limit, models.CalculateOffset(filter.Page, filter.Limit))

	return listQuery{
		DataSQL:   dataSQL,
		DataArgs:  dataArgs,
		CountSQL:  customerListCount + whereClause,
		CountArgs: countArgs,
	}
}

// containsPattern wraps value for a literal, case-insensitive substring match.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}
