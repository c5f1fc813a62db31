package constants

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

const (
	// 預設購物車加入數量
	DefaultCartQuantity int = 1
	// 購物車 upsert 撞到寫入衝突時的重試次數
	CartUpsertRetry int = 1
)
