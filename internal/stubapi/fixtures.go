package stubapi

import "printduka-admin/internal/resource"

// seedFixtures returns the demo dataset. Money fields are strings on
// purpose: the real backend serializes decimals that way and the admin
// client has to cope. Related records appear both nested (the target of
// double-underscore lookups such as vendor__id) and flattened (the
// vendor_id / method fields the typed models decode), matching how the
// backend serializers expose them.
func seedFixtures() map[string][]Record {
	return map[string][]Record{
		resource.Vendors: {
			{"id": "v-001", "name": "Kazi Print Works", "status": "active", "email": "kazi@example.com", "phone": "+254700000001", "rating": 4.6, "created_at": "2025-11-02T08:15:00Z"},
			{"id": "v-002", "name": "Mombasa Litho", "status": "pending", "email": "litho@example.com", "phone": "+254700000002", "rating": 0.0, "created_at": "2026-01-19T10:00:00Z"},
			{"id": "v-003", "name": "Nairobi Banner Co", "status": "active", "email": "banners@example.com", "phone": "+254700000003", "rating": 4.1, "created_at": "2025-08-23T14:40:00Z"},
			{"id": "v-004", "name": "Upesi Signage", "status": "suspended", "email": "upesi@example.com", "phone": "+254700000004", "rating": 2.8, "created_at": "2025-05-11T09:05:00Z"},
		},
		resource.Processes: {
			{"id": "pr-001", "name": "Offset Printing", "status": "active", "category": "printing", "turnaround_days": 3.0, "created_at": "2025-04-01T00:00:00Z"},
			{"id": "pr-002", "name": "Large Format", "status": "active", "category": "printing", "turnaround_days": 2.0, "created_at": "2025-04-01T00:00:00Z"},
			{"id": "pr-003", "name": "Lamination", "status": "active", "category": "finishing", "turnaround_days": 1.0, "created_at": "2025-04-02T00:00:00Z"},
			{"id": "pr-004", "name": "Foil Stamping", "status": "inactive", "category": "finishing", "turnaround_days": 4.0, "created_at": "2025-06-15T00:00:00Z"},
		},
		resource.Products: {
			{"id": "p-001", "name": "Business Cards 350gsm", "status": "published", "category": "cards", "vendor": Record{"id": "v-001", "name": "Kazi Print Works"}, "base_price": "1200.00", "created_at": "2025-12-01T11:00:00Z"},
			{"id": "p-002", "name": "Roll-up Banner 2m", "status": "published", "category": "banners", "vendor": Record{"id": "v-003", "name": "Nairobi Banner Co"}, "base_price": "6500.00", "created_at": "2025-12-03T11:00:00Z"},
			{"id": "p-003", "name": "A5 Flyers", "status": "draft", "category": "flyers", "vendor": Record{"id": "v-001", "name": "Kazi Print Works"}, "base_price": "8.50", "created_at": "2026-02-10T09:30:00Z"},
			{"id": "p-004", "name": "Branded Mugs", "status": "archived", "category": "merchandise", "vendor": Record{"id": "v-004", "name": "Upesi Signage"}, "base_price": "450.00", "created_at": "2025-07-21T16:00:00Z"},
		},
		resource.Deliveries: {
			{"id": "d-001", "status": "scheduled", "job": Record{"id": "j-001", "delivery_method": "courier"}, "job_id": "j-001", "method": "courier", "scheduled_date": "2026-09-02", "address": "Westlands, Nairobi", "created_at": "2026-08-20T10:00:00Z"},
			{"id": "d-002", "status": "in_transit", "job": Record{"id": "j-002", "delivery_method": "pickup"}, "job_id": "j-002", "method": "pickup", "scheduled_date": "2026-08-30", "address": "CBD Pickup Point", "created_at": "2026-08-25T12:00:00Z"},
			{"id": "d-003", "status": "delivered", "job": Record{"id": "j-003", "delivery_method": "courier"}, "job_id": "j-003", "method": "courier", "scheduled_date": "2026-08-15", "address": "Kilimani, Nairobi", "created_at": "2026-08-10T08:00:00Z"},
		},
		resource.Payments: {
			{"id": "pay-001", "job_id": "j-001", "amount": "15000.00", "payment_method": "mpesa", "status": "confirmed", "reference": "QX12AB34CD", "paid_at": "2026-08-21T13:45:00Z", "created_at": "2026-08-21T13:45:00Z"},
			{"id": "pay-002", "job_id": "j-002", "amount": "8200.50", "payment_method": "bank", "status": "pending", "paid_at": "2026-08-28T09:10:00Z", "created_at": "2026-08-28T09:10:00Z"},
			{"id": "pay-003", "job_id": "j-003", "amount": 4300.0, "payment_method": "mpesa", "status": "confirmed", "reference": "QX98ZY76WV", "paid_at": "2026-08-14T17:20:00Z", "created_at": "2026-08-14T17:20:00Z"},
		},
		resource.LPOs: {
			{"id": "lpo-001", "number": "LPO-2026-0041", "vendor": Record{"id": "v-001", "name": "Kazi Print Works"}, "vendor_id": "v-001", "total": "54000.00", "status": "approved", "created_at": "2026-08-01T10:00:00Z", "updated_at": "2026-08-03T10:00:00Z"},
			{"id": "lpo-002", "number": "LPO-2026-0042", "vendor": Record{"id": "v-003", "name": "Nairobi Banner Co"}, "vendor_id": "v-003", "total": "12750.00", "status": "pending", "created_at": "2026-08-18T15:30:00Z", "updated_at": "2026-08-18T15:30:00Z"},
			{"id": "lpo-003", "number": "LPO-2026-0043", "vendor": Record{"id": "v-001", "name": "Kazi Print Works"}, "vendor_id": "v-001", "total": "9900.00", "status": "pending", "created_at": "2026-08-27T11:00:00Z", "updated_at": "2026-08-27T11:00:00Z"},
		},
		resource.QualityChecks: {
			{"id": "qc-001", "job": Record{"id": "j-001"}, "job_id": "j-001", "result": "pass", "notes": "Color within tolerance", "checked_at": "2026-08-22T10:00:00Z", "created_at": "2026-08-22T10:00:00Z"},
			{"id": "qc-002", "job": Record{"id": "j-002"}, "job_id": "j-002", "result": "fail", "notes": "Trim misaligned on 40 units", "checked_at": "2026-08-26T14:00:00Z", "created_at": "2026-08-26T14:00:00Z"},
			{"id": "qc-003", "job": Record{"id": "j-002"}, "job_id": "j-002", "result": "pass", "notes": "Reprint approved", "checked_at": "2026-08-28T16:00:00Z", "created_at": "2026-08-28T16:00:00Z"},
		},
		resource.Jobs: {
			{"id": "j-001", "title": "Business cards for Acme Ltd", "status": "in_production", "priority": "high", "assigned_to": "staff-2", "delivery_method": "courier", "due_date": "2026-09-01", "created_at": "2026-08-19T09:00:00Z"},
			{"id": "j-002", "title": "Event banners — Tech Expo", "status": "qc", "priority": "normal", "assigned_to": "staff-3", "delivery_method": "pickup", "due_date": "2026-09-05", "created_at": "2026-08-24T10:30:00Z"},
			{"id": "j-003", "title": "Flyer run — 5000 units", "status": "completed", "priority": "low", "assigned_to": "staff-2", "delivery_method": "courier", "due_date": "2026-08-15", "created_at": "2026-08-08T08:00:00Z"},
			{"id": "j-004", "title": "Mug branding — staff gifts", "status": "pending", "priority": "normal", "assigned_to": "staff-3", "delivery_method": "pickup", "due_date": "2026-09-12", "created_at": "2026-08-29T13:00:00Z"},
		},
		resource.Leads: {
			{"id": "l-001", "name": "Wanjiku Enterprises", "status": "new", "source": "website", "contact": "wanjiku@example.com", "created_at": "2026-08-26T09:00:00Z"},
			{"id": "l-002", "name": "Safari Tours Ltd", "status": "qualified", "source": "referral", "contact": "bookings@example.com", "created_at": "2026-08-12T11:00:00Z"},
			{"id": "l-003", "name": "Duka Mbili", "status": "contacted", "source": "walk_in", "contact": "+254711000222", "created_at": "2026-08-20T15:00:00Z"},
		},
		resource.Quotes: {
			{"id": "q-001", "number": "Q-2026-0107", "customer": Record{"id": "c-010", "name": "Acme Ltd"}, "customer_id": "c-010", "customer_name": "Acme Ltd", "total": "15000.00", "status": "approved", "valid_until": "2026-09-20", "created_at": "2026-08-17T10:00:00Z", "updated_at": "2026-08-19T10:00:00Z"},
			{"id": "q-002", "number": "Q-2026-0108", "customer": Record{"id": "c-011", "name": "Safari Tours Ltd"}, "customer_id": "c-011", "customer_name": "Safari Tours Ltd", "total": "48500.00", "status": "sent", "valid_until": "2026-09-30", "created_at": "2026-08-23T12:00:00Z", "updated_at": "2026-08-23T12:00:00Z"},
			{"id": "q-003", "number": "Q-2026-0109", "customer": Record{"id": "c-012", "name": "Duka Mbili"}, "customer_id": "c-012", "customer_name": "Duka Mbili", "total": "7200.00", "status": "draft", "created_at": "2026-08-29T09:45:00Z", "updated_at": "2026-08-29T09:45:00Z"},
		},
	}
}
