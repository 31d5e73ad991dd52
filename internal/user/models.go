package user

type Usuario struct {
	ID      int64  `json:"id_usuario"`
	Nome    string `json:"nome"`
	Gmail   string `json:"gmail"`
	CPF     string `json:"cpf"`
	Idade   int    `json:"idade"`
	CEP     string `json:"cep"`
	IsAdmin bool   `json:"is_admin"`
}

type UserCreated struct {
	UserID int64  `json:"user_id"`
	Nome   string `json:"nome"`
	Gmail  string `json:"gmail"`
}
