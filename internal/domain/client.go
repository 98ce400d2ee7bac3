package domain

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"nome"`
	Email             string    `db:"email" json:"email"`
	Phone             string    `db:"phone" json:"telefone"`
	BirthDate         string    `db:"birth_date" json:"dataNascimento"`
	PostalCode        string    `db:"postal_code" json:"cep"`
	Street            string    `db:"street" json:"logradouro"`
	Neighborhood      string    `db:"neighborhood" json:"bairro"`
	City              string    `db:"city" json:"cidade"`
	State             string    `db:"state" json:"uf"`
	Number            string    `db:"number" json:"numero"`
	Complement        *string   `db:"complement" json:"complemento"`
	FavoriteProcedure string    `db:"favorite_procedure" json:"procedimentoFavorito"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
