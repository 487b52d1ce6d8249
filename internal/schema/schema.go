// Package schema is the single registry of target tables and their column
// order. Both sinks render rows against these lists, so a generator can never
// drift from the emitted column order.
package schema

import "fmt"

// Table names the physical tables the seeder writes.
type Table string

const (
	TableUser            Table = "p_user"
	TableUserAuth        Table = "p_user_auth"
	TableCategory        Table = "p_category"
	TableStore           Table = "p_store"
	TableStoreCategory   Table = "p_store_category"
	TableStoreUser       Table = "p_store_user"
	TableMenu            Table = "p_menu"
	TableMenuOption      Table = "p_menu_option"
	TableOrigin          Table = "p_origin"
	TableOrder           Table = "p_order"
	TableOrderItem       Table = "p_order_item"
	TableOrderItemOption Table = "p_order_item_option"
	TablePayment         Table = "p_payment"
	TablePaymentHistory  Table = "p_payment_history"
	TablePaymentKey      Table = "p_payment_key"
	TableReview          Table = "p_review"
)

// String implements fmt.Stringer.
func (t Table) String() string {
	return string(t)
}

// Row is one record in registry column order.
type Row []any

var columnsByTable = map[Table][]string{
	TableUser: {
		"id", "username", "nickname", "email", "male", "age", "road_address",
		"address_detail", "role", "created_at", "created_by", "updated_at",
		"updated_by", "is_deleted", "deleted_at", "deleted_by",
	},
	TableUserAuth: {
		"id", "user_id", "hashed_password", "created_at", "created_by",
		"updated_at", "updated_by", "is_deleted", "deleted_at", "deleted_by",
	},
	TableCategory: {
		"id", "name", "is_deleted", "deleted_at", "deleted_by",
		"created_at", "created_by", "updated_at", "updated_by",
	},
	TableStore: {
		"id", "name", "road_address", "address_detail", "phone_number",
		"open_time", "close_time", "status", "is_deleted", "deleted_at",
		"deleted_by", "created_at", "created_by", "updated_at", "updated_by",
	},
	TableStoreCategory: {
		"id", "store_id", "category_id", "created_at", "created_by",
		"updated_at", "updated_by", "is_deleted", "deleted_at", "deleted_by",
	},
	TableStoreUser: {
		"id", "store_id", "user_id", "created_at", "created_by",
		"updated_at", "updated_by", "is_deleted", "deleted_at", "deleted_by",
	},
	TableMenu: {
		"menu_id", "store_id", "name", "category", "price", "description",
		"image_url", "is_available", "is_hidden", "is_deleted", "deleted_at",
		"deleted_by", "created_at", "created_by", "updated_at", "updated_by",
	},
	TableMenuOption: {
		"option_id", "menu_id", "name", "detail", "price", "is_available",
		"is_hidden", "is_deleted", "deleted_at", "deleted_by", "created_at",
		"created_by", "updated_at", "updated_by",
	},
	TableOrigin: {
		"id", "menu_id", "origin_name", "ingredient_name", "is_deleted",
		"deleted_at", "deleted_by", "created_at", "created_by",
		"updated_at", "updated_by",
	},
	TableOrder: {
		"id", "user_id", "store_id", "order_number", "request",
		"need_disposables", "pickup_time", "order_status",
		"payment_completed_at", "payment_failed_at", "accepted_at",
		"rejected_at", "cooking_started_at", "cooking_completed_at",
		"picked_up_at", "cancelled_at", "cancelled_by", "estimated_time",
		"reason", "created_at", "created_by",
	},
	TableOrderItem: {
		"id", "order_id", "menu_id", "menu_name", "menu_price",
		"quantity", "created_at", "created_by",
	},
	TableOrderItemOption: {
		"id", "order_item_id", "menu_option_id", "option_name",
		"option_detail", "option_price", "created_at", "created_by",
	},
	TablePayment: {
		"id", "user_id", "order_id", "payment_title", "payment_content",
		"payment_method", "payment_amount", "created_at", "created_by",
	},
	TablePaymentHistory: {
		"id", "payment_id", "payment_status", "created_at", "created_by",
	},
	TablePaymentKey: {
		"id", "payment_id", "payment_key", "confirmed_at",
		"created_at", "created_by",
	},
	TableReview: {
		"id", "store_id", "user_id", "rating", "content", "is_deleted",
		"deleted_at", "deleted_by", "created_at", "created_by",
		"updated_at", "updated_by",
	},
}

// Columns returns the canonical column order for a table.
func Columns(t Table) ([]string, error) {
	cols, ok := columnsByTable[t]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", t)
	}
	return cols, nil
}

// TruncateOrder lists every table child-first, safe for a cascading truncate.
var TruncateOrder = []Table{
	TableReview,
	TablePaymentKey, TablePaymentHistory, TablePayment,
	TableOrderItemOption, TableOrderItem, TableOrder,
	TableOrigin, TableMenuOption, TableMenu,
	TableStoreCategory, TableStoreUser, TableStore,
	TableUserAuth, TableUser,
	TableCategory,
}
