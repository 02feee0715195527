package favoritos

import (
	"fmt"
	"path"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/brasildados/dadosbr/pkg/uf"
)

// Wikimedia commons paths of the state flags, percent-encoded as the
// thumbnail service expects. Most originals are SVG; the thumbnailer
// appends .png to those.
var bandeiras = map[uf.Code]string{
	uf.BR: "0/05/Flag_of_Brazil.svg",
	uf.AC: "4/4c/Bandeira_do_Acre.svg",
	uf.AM: "6/6b/Bandeira_do_Amazonas.svg",
	uf.AL: "8/88/Bandeira_de_Alagoas.svg",
	uf.AP: "0/0c/Bandeira_do_Amap%C3%A1.svg",
	uf.BA: "2/28/Bandeira_da_Bahia.svg",
	uf.CE: "2/2e/Bandeira_do_Cear%C3%A1.svg",
	uf.DF: "3/3c/Bandeira_do_Distrito_Federal_%28Brasil%29.svg",
	uf.ES: "4/43/Bandeira_do_Esp%C3%ADrito_Santo.svg",
	uf.GO: "b/be/Flag_of_Goi%C3%A1s.svg",
	uf.MA: "4/45/Bandeira_do_Maranh%C3%A3o.svg",
	uf.MG: "f/f4/Bandeira_de_Minas_Gerais.svg",
	uf.MT: "0/0b/Bandeira_de_Mato_Grosso.svg",
	uf.MS: "6/64/Bandeira_de_Mato_Grosso_do_Sul.svg",
	uf.PA: "0/02/Bandeira_do_Par%C3%A1.svg",
	uf.PB: "b/bb/Bandeira_da_Para%C3%ADba.svg",
	uf.PE: "5/59/Bandeira_de_Pernambuco.svg",
	uf.PI: "3/33/Bandeira_do_Piau%C3%AD.svg",
	uf.PR: "9/93/Bandeira_do_Paran%C3%A1.svg",
	uf.RJ: "7/73/Bandeira_do_estado_do_Rio_de_Janeiro.svg",
	uf.RO: "f/fa/Bandeira_de_Rond%C3%B4nia.svg",
	uf.RN: "3/30/Bandeira_do_Rio_Grande_do_Norte.svg",
	uf.RR: "9/98/Bandeira_de_Roraima.svg",
	uf.RS: "6/63/Bandeira_do_Rio_Grande_do_Sul.svg",
	uf.SC: "1/1a/Bandeira_de_Santa_Catarina.svg",
	uf.SE: "b/be/Bandeira_de_Sergipe.svg",
	uf.SP: "2/2b/Bandeira_do_estado_de_S%C3%A3o_Paulo.svg",
	uf.TO: "f/ff/Bandeira_do_Tocantins.svg",

	uf.FN: "3/3b/Fernando_de_Noronha%2C_PE_-_Bandeira.svg",
	uf.GB: "c/c3/Bandeira_do_Estado_da_Guanabara_%281960%E2%80%931975%29.png",
}

// Wikimedia commons paths of the state coats of arms.
var brasoes = map[uf.Code]string{
	uf.BR: "b/bf/Coat_of_arms_of_Brazil.svg",
	uf.AC: "5/52/Bras%C3%A3o_do_Acre.svg",
	uf.AM: "2/2c/Bras%C3%A3o_do_Amazonas.svg",
	uf.AL: "5/5c/Bras%C3%A3o_do_Estado_de_Alagoas.svg",
	uf.AP: "6/63/Bras%C3%A3o_do_Amap%C3%A1.svg",
	uf.BA: "1/12/Bras%C3%A3o_do_estado_da_Bahia.svg",
	uf.CE: "f/fe/Bras%C3%A3o_do_Cear%C3%A1.svg",
	uf.DF: "e/e0/Bras%C3%A3o_do_Distrito_Federal_%28Brasil%29.svg",
	uf.ES: "a/a0/Bras%C3%A3o_do_Esp%C3%ADrito_Santo.svg",
	uf.GO: "b/bf/Bras%C3%A3o_de_Goi%C3%A1s.svg",
	uf.MA: "a/ab/Bras%C3%A3o_do_Maranh%C3%A3o.svg",
	uf.MG: "d/d2/Bras%C3%A3o_de_Minas_Gerais.svg",
	uf.MT: "0/04/Bras%C3%A3o_de_Mato_Grosso.png",
	uf.MS: "f/fa/Bras%C3%A3o_de_Mato_Grosso_do_Sul.svg",
	uf.PA: "b/bc/Bras%C3%A3o_do_Par%C3%A1.svg",
	uf.PB: "f/fd/Bras%C3%A3o_da_Para%C3%ADba.svg",
	uf.PE: "0/04/Bras%C3%A3o_do_estado_de_Pernambuco.svg",
	uf.PI: "a/ad/Bras%C3%A3o_do_Piau%C3%AD.svg",
	uf.PR: "4/49/Bras%C3%A3o_do_Paran%C3%A1.svg",
	uf.RJ: "5/5b/Bras%C3%A3o_do_estado_do_Rio_de_Janeiro.svg",
	uf.RO: "f/f1/Bras%C3%A3o_de_Rond%C3%B4nia.svg",
	uf.RN: "2/26/Bras%C3%A3o_do_Rio_Grande_do_Norte.svg",
	uf.RR: "e/ed/Bras%C3%A3o_de_Roraima.svg",
	uf.RS: "3/38/Bras%C3%A3o_do_Rio_Grande_do_Sul.svg",
	uf.SC: "6/65/Bras%C3%A3o_de_Santa_Catarina.svg",
	uf.SE: "5/52/Bras%C3%A3o_de_Sergipe.svg",
	uf.SP: "1/1a/Bras%C3%A3o_do_estado_de_S%C3%A3o_Paulo.svg",
	uf.TO: "c/cc/Bras%C3%A3o_do_Tocantins.svg",

	uf.FN: "5/5a/Fernando_de_Noronha%2C_PE_-_Bras%C3%A3o.svg",
	uf.GB: "c/cf/Bras%C3%A3o_do_Estado_da_Guanabara_%281960%E2%80%931975%29.png",
}

// Bandeira returns the Wikimedia thumbnail URL of a unit's flag, rendered
// tamanho pixels wide. Extinct units are accepted. Pure string
// construction; the image is not fetched.
func (c *Client) Bandeira(unidade string, tamanho int) (string, error) {
	return c.thumbnail(bandeiras, "bandeira", unidade, tamanho)
}

// Brasao returns the Wikimedia thumbnail URL of a unit's coat of arms,
// rendered tamanho pixels wide. Extinct units are accepted.
func (c *Client) Brasao(unidade string, tamanho int) (string, error) {
	return c.thumbnail(brasoes, "brasao", unidade, tamanho)
}

func (c *Client) thumbnail(table map[uf.Code]string, op, unidade string, tamanho int) (string, error) {
	if tamanho <= 0 {
		return "", eris.Wrapf(ErrOpcaoInvalida, "favoritos: %s tamanho must be positive, got %d", op, tamanho)
	}
	code, err := uf.ParseExtintos(unidade)
	if err != nil {
		return "", err
	}

	frag := table[code]
	name := path.Base(frag)
	ext := ".png"
	if strings.HasSuffix(name, ".png") {
		ext = ""
	}
	return fmt.Sprintf("%s%s/%dpx-%s%s", c.urls.Wikimedia, frag, tamanho, name, ext), nil
}
