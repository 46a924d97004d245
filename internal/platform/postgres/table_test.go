package postgres

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

func TestTableSQL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"SELECT id, ticket_id, staff_id, message, created_at, updated_at FROM ticket_replies WHERE id = $1",
		ticketReplyTable.selectByIDSQL())
	assert.Equal(t,
		"INSERT INTO ticket_replies (ticket_id, staff_id, message, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) RETURNING id",
		ticketReplyTable.insertSQL())
	assert.Equal(t,
		"UPDATE ticket_replies SET ticket_id = $1, staff_id = $2, message = $3, updated_at = $4 WHERE id = $5",
		ticketReplyTable.updateSQL())
	assert.Equal(t, "DELETE FROM ticket_replies WHERE id = $1", ticketReplyTable.deleteSQL())
}

func TestListSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    store.ListParams
		wantWhere string
		wantOrder string
		wantArgs  []any
	}{
		{
			name:      "defaults",
			params:    store.ListParams{Page: 1, PerPage: 20},
			wantWhere: "",
			wantOrder: " ORDER BY created_at DESC, id DESC",
			wantArgs:  nil,
		},
		{
			name:      "search escapes wildcards",
			params:    store.ListParams{Page: 1, PerPage: 20, Search: "50%_off"},
			wantWhere: " WHERE (name ILIKE $1 OR company ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1)",
			wantOrder: " ORDER BY created_at DESC, id DESC",
			wantArgs:  []any{`%50\%\_off%`},
		},
		{
			name: "filters in key order and unknown keys dropped",
			params: store.ListParams{
				Page: 1, PerPage: 20,
				Filters: map[string]string{"status": "new", "assigned_to": "3", "password": "x"},
			},
			wantWhere: " WHERE assigned_to::text = $1 AND status::text = $2",
			wantOrder: " ORDER BY created_at DESC, id DESC",
			wantArgs:  []any{"3", "new"},
		},
		{
			name:      "whitelisted sort ascending",
			params:    store.ListParams{Page: 1, PerPage: 20, Sort: "value"},
			wantOrder: " ORDER BY lead_value ASC, id ASC",
		},
		{
			name:      "unknown sort falls back to default",
			params:    store.ListParams{Page: 1, PerPage: 20, Sort: "name; DROP TABLE leads", Desc: false},
			wantOrder: " ORDER BY created_at DESC, id DESC",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			query, count, args := leadTable.listSQL(tc.params)
			n := len(tc.wantArgs)
			assert.Equal(t, "SELECT COUNT(*) FROM leads"+tc.wantWhere, count)
			assert.Equal(t,
				"SELECT "+leadTable.selectList()+" FROM leads"+tc.wantWhere+tc.wantOrder+
					" LIMIT $"+strconv.Itoa(n+1)+" OFFSET $"+strconv.Itoa(n+2),
				query)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestOrderClauseByID(t *testing.T) {
	t.Parallel()

	tbl := &table[*domain.TicketReply]{defaultSort: "id", sortAsc: true}
	assert.Equal(t, " ORDER BY id ASC", tbl.orderClause(store.ListParams{}))
}

func TestColumnMappingsAreConsistent(t *testing.T) {
	t.Parallel()

	checks := []struct {
		name    string
		columns int
		values  int
		targets int
	}{
		{"staff", len(staffTable.columns), len(staffTable.values(staffTable.newE())), len(staffTable.targets(staffTable.newE()))},
		{"leads", len(leadTable.columns), len(leadTable.values(leadTable.newE())), len(leadTable.targets(leadTable.newE()))},
		{"clients", len(clientTable.columns), len(clientTable.values(clientTable.newE())), len(clientTable.targets(clientTable.newE()))},
		{"deals", len(dealTable.columns), len(dealTable.values(dealTable.newE())), len(dealTable.targets(dealTable.newE()))},
		{"tasks", len(taskTable.columns), len(taskTable.values(taskTable.newE())), len(taskTable.targets(taskTable.newE()))},
		{"meetings", len(meetingTable.columns), len(meetingTable.values(meetingTable.newE())), len(meetingTable.targets(meetingTable.newE()))},
		{"proposals", len(proposalTable.columns), len(proposalTable.values(proposalTable.newE())), len(proposalTable.targets(proposalTable.newE()))},
		{"estimates", len(estimateTable.columns), len(estimateTable.values(estimateTable.newE())), len(estimateTable.targets(estimateTable.newE()))},
		{"invoices", len(invoiceTable.columns), len(invoiceTable.values(invoiceTable.newE())), len(invoiceTable.targets(invoiceTable.newE()))},
		{"tickets", len(ticketTable.columns), len(ticketTable.values(ticketTable.newE())), len(ticketTable.targets(ticketTable.newE()))},
		{"goals", len(goalTable.columns), len(goalTable.values(goalTable.newE())), len(goalTable.targets(goalTable.newE()))},
		{"reminders", len(reminderTable.columns), len(reminderTable.values(reminderTable.newE())), len(reminderTable.targets(reminderTable.newE()))},
		{"email_messages", len(emailMessageTable.columns), len(emailMessageTable.values(emailMessageTable.newE())), len(emailMessageTable.targets(emailMessageTable.newE()))},
		{"chat_rooms", len(chatRoomTable.columns), len(chatRoomTable.values(chatRoomTable.newE())), len(chatRoomTable.targets(chatRoomTable.newE()))},
	}
	for _, c := range checks {
		assert.Equal(t, c.columns, c.values, "%s values", c.name)
		assert.Equal(t, c.columns, c.targets, "%s targets", c.name)
	}
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `a\\b\%c\_d`, escapeLike(`a\b%c_d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
