package structs

type EnviromentModel struct {
	Database         database
	ConcurrentAmount int
	RabbitMQ         rabbitmq
	Log              log
	Email            email
	Server           server
	Router           router
	Auth             auth
	Import           importer
	Fruit            remote
	Currency         remote
	Tweet            remote
	Gemini           gemini
}

type server struct {
	AppAPI string
}

type database struct {
	Client      string
	MaxIdle     uint
	MaxLifeTime string
	MaxOpenConn uint
	User        string
	Password    string
	Host        string
	Db          string
	Params      string
	Port        string
	LogEnable   int
}

type rabbitmq struct {
	Enable int
	Domain string
}

type log struct {
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
	LogstashIndex  string
}

type email struct {
	APIUrl string
}

type router struct {
	Port int
}

type auth struct {
	JWTSecret     string
	TokenTTLHours int
	ClinicianKey  string
}

type importer struct {
	PatientCSV string
}

type remote struct {
	BaseURL string
}

type gemini struct {
	BaseURL string
	APIKey  string
	Model   string
}
