package resource

import "printduka-admin/internal/query"

// Collection names.
const (
	Vendors       = "vendors"
	Processes     = "processes"
	Products      = "products"
	Deliveries    = "deliveries"
	Payments      = "payments"
	LPOs          = "lpos"
	QualityChecks = "quality-checks"
	Jobs          = "jobs"
	Leads         = "leads"
	Quotes        = "quotes"
)

// Record-level actions.
const (
	ActionInvite           = "invite"
	ActionPublish          = "publish"
	ActionArchive          = "archive"
	ActionQualify          = "qualify"
	ActionConvert          = "convert"
	ActionApprove          = "approve"
	ActionClone            = "clone"
	ActionSendToPTReview   = "send_to_pt_for_review"
	ActionSendToCustomer   = "send_to_customer"
)

// catalog maps collection names to their contracts. Filter names are what
// the views use; Param is the backend's documented parameter where it
// differs (Django-style lookups such as job__delivery_method).
var catalog = map[string]Descriptor{
	Vendors: {
		Name: Vendors,
		Schema: query.Schema{
			Resource: Vendors,
			Fields: []query.Field{
				{Name: "status", Unset: query.UnsetEnum},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
		Actions: []string{ActionInvite},
	},
	Processes: {
		Name: Processes,
		Schema: query.Schema{
			Resource: Processes,
			Fields: []query.Field{
				{Name: "status", Unset: query.UnsetEnum},
				{Name: "category", Unset: query.UnsetEnum},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
	},
	Products: {
		Name: Products,
		Schema: query.Schema{
			Resource: Products,
			Fields: []query.Field{
				{Name: "status", Unset: query.UnsetEnum},
				{Name: "category", Unset: query.UnsetEnum},
				{Name: "vendor", Param: "vendor__id", Unset: query.UnsetEnum},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
		Actions: []string{ActionPublish, ActionArchive},
	},
	Deliveries: {
		Name: Deliveries,
		Schema: query.Schema{
			Resource: Deliveries,
			Fields: []query.Field{
				{Name: "status", Unset: query.UnsetEnum},
				{Name: "method", Param: "job__delivery_method", Unset: query.UnsetEnum},
				{Name: "dateFrom", Param: "scheduled_date__gte", Unset: query.UnsetText},
				{Name: "dateTo", Param: "scheduled_date__lte", Unset: query.UnsetText},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
	},
	Payments: {
		Name: Payments,
		Schema: query.Schema{
			Resource: Payments,
			Fields: []query.Field{
				{Name: "status", Unset: query.UnsetEnum},
				{Name: "method", Param: "payment_method", Unset: query.UnsetEnum},
				{Name: "dateFrom", Param: "paid_at__gte", Unset: query.UnsetText},
				{Name: "dateTo", Param: "paid_at__lte", Unset: query.UnsetText},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
	},
	LPOs: {
		Name: LPOs,
		Schema: query.Schema{
			Resource: LPOs,
			Fields: []query.Field{
				{Name: "status", Unset: query.UnsetEnum},
				{Name: "vendor", Param: "vendor__id", Unset: query.UnsetEnum},
				{Name: "dateFrom", Param: "created_at__gte", Unset: query.UnsetText},
				{Name: "dateTo", Param: "created_at__lte", Unset: query.UnsetText},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
	},
	QualityChecks: {
		Name: QualityChecks,
		Schema: query.Schema{
			Resource: QualityChecks,
			Fields: []query.Field{
				{Name: "result", Unset: query.UnsetEnum},
				{Name: "job", Param: "job__id", Unset: query.UnsetEnum},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
	},
	Jobs: {
		Name: Jobs,
		Schema: query.Schema{
			Resource: Jobs,
			Fields: []query.Field{
				{Name: "status", Unset: query.UnsetEnum},
				{Name: "priority", Unset: query.UnsetEnum},
				{Name: "assignee", Param: "assigned_to", Unset: query.UnsetEnum},
				{Name: "dateFrom", Param: "due_date__gte", Unset: query.UnsetText},
				{Name: "dateTo", Param: "due_date__lte", Unset: query.UnsetText},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
	},
	Leads: {
		Name: Leads,
		Schema: query.Schema{
			Resource: Leads,
			Fields: []query.Field{
				{Name: "status", Unset: query.UnsetEnum},
				{Name: "source", Unset: query.UnsetEnum},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
		Actions: []string{ActionQualify, ActionConvert},
	},
	Quotes: {
		Name: Quotes,
		Schema: query.Schema{
			Resource: Quotes,
			Fields: []query.Field{
				{Name: "status", Unset: query.UnsetEnum},
				{Name: "customer", Param: "customer__id", Unset: query.UnsetEnum},
				{Name: "dateFrom", Param: "created_at__gte", Unset: query.UnsetText},
				{Name: "dateTo", Param: "created_at__lte", Unset: query.UnsetText},
				{Name: "ordering", Unset: query.UnsetText},
			},
		},
		Actions: []string{ActionApprove, ActionClone, ActionSendToPTReview, ActionSendToCustomer},
	},
}
