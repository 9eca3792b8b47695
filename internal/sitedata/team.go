// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package sitedata

import "github.com/olegiv/funteco-cms/internal/model"

var teamMembers = []model.TeamMember{
	{
		Slug:     "nieves-mendez-olaya",
		Name:     "Nieves Méndez Olaya",
		Role:     "Socia fundadora",
		Image:    imageBase + "funtecoNieves.png",
		ShortBio: "Trabajadora social con dos décadas de acompañamiento a familias afrocolombianas y ecuatorianas en procesos de cuidado comunitario.",
		Bio: []string{
			"Nieves lidera procesos de acompañamiento psicosocial y formación en derechos para mujeres migrantes afro.",
			"Ha facilitado redes de apoyo comunitario en Esmeraldas, Quito y la frontera norte, sosteniendo espacios de escucha y sanación colectiva.",
		},
		Focus:      "Teje metodologías de cuidado y sanación colectiva.",
		Expertise:  []string{"Acompañamiento psicosocial", "Derechos de mujeres migrantes", "Redes comunitarias"},
		Highlights: []string{"Dos décadas de trabajo social con familias afro", "Redes de apoyo en la frontera norte"},
		Socials: []model.SocialLink{
			{Platform: model.SocialFacebook, Label: "Facebook de Nieves Méndez Olaya", URL: "https://www.facebook.com/"},
			{Platform: model.SocialInstagram, Label: "Instagram de Nieves Méndez Olaya", URL: "https://www.instagram.com/"},
		},
	},
	{
		Slug:     "diana-angulo-balanta",
		Name:     "Diana Angulo Balanta",
		Role:     "Socia fundadora",
		Image:    imageBase + "funtecoDiana.png",
		ShortBio: "Comunicadora y gestora cultural afrocolombiana. Impulsa procesos de memoria y narrativas audiovisuales con juventudes afro.",
		Bio: []string{
			"Diana dinamiza talleres de comunicación popular y proyectos audiovisuales que rescatan historias afro en Ecuador y Colombia.",
			"Coordina alianzas con festivales comunitarios y acompaña a liderazgos juveniles en el uso estratégico de medios digitales.",
		},
		Focus:      "Potencia la comunicación comunitaria y la memoria audiovisual afro.",
		Expertise:  []string{"Comunicación popular", "Producción audiovisual", "Gestión cultural"},
		Highlights: []string{"Alianzas con festivales comunitarios", "Mentoría de liderazgos juveniles"},
		Socials: []model.SocialLink{
			{Platform: model.SocialInstagram, Label: "Instagram de Diana Angulo Balanta", URL: "https://www.instagram.com/"},
			{Platform: model.SocialLinkedIn, Label: "LinkedIn de Diana Angulo Balanta", URL: "https://www.linkedin.com/"},
		},
	},
	{
		Slug:     "elizabeth-mendez-grueso",
		Name:     "Elizabeth Méndez Grueso",
		Role:     "Socia fundadora",
		Image:    imageBase + "funtecoElizabeth.png",
		ShortBio: "Economista popular que acompaña emprendimientos liderados por mujeres afro en Quito y Esmeraldas con enfoque solidario.",
		Bio: []string{
			"Elizabeth articula procesos de economía feminista afro, fortaleciendo cooperativas, fondos solidarios y redes de comercialización justa.",
			"Diseña herramientas financieras accesibles y procesos de capacitación que priorizan el bienestar colectivo.",
		},
		Focus:      "Fortalece economías del cuidado y emprendimientos afro.",
		Expertise:  []string{"Economía feminista", "Fondos solidarios", "Comercio justo"},
		Highlights: []string{"Cooperativas de mujeres afro en Quito y Esmeraldas", "Herramientas financieras comunitarias"},
		Socials: []model.SocialLink{
			{Platform: model.SocialInstagram, Label: "Instagram de Elizabeth Méndez Grueso", URL: "https://www.instagram.com/"},
			{Platform: model.SocialFacebook, Label: "Facebook de Elizabeth Méndez Grueso", URL: "https://www.facebook.com/"},
		},
	},
	{
		Slug:     "francia-jenny-moreno",
		Name:     "Francia Jenny Moreno",
		Role:     "Coordinadora de proyectos",
		Image:    imageBase + "funtecoFrancia.png",
		ShortBio: "Ingeniera en desarrollo local con experiencia en gestión de fondos y programas con enfoque interseccional en Ecuador.",
		Bio: []string{
			"Francia coordina proyectos de justicia racial y movilidad humana, liderando equipos territoriales y procesos de evaluación participativa.",
			"Gestiona alianzas institucionales y garantiza que cada iniciativa centre el cuidado y la sostenibilidad.",
		},
		Focus:      "Gestiona proyectos con enfoque interseccional y territorial.",
		Expertise:  []string{"Gestión de proyectos", "Evaluación participativa", "Alianzas institucionales"},
		Highlights: []string{"Coordinación de equipos territoriales", "Proyectos de justicia racial y movilidad humana"},
		Socials: []model.SocialLink{
			{Platform: model.SocialLinkedIn, Label: "LinkedIn de Francia Jenny Moreno", URL: "https://www.linkedin.com/"},
			{Platform: model.SocialWeb, Label: "Portafolio de Francia Jenny Moreno", URL: "https://example.com/"},
		},
	},
}
