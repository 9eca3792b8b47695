// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package sitedata

import "github.com/olegiv/funteco-cms/internal/model"

const imageBase = "https://raw.githubusercontent.com/DerianDev17/Funteco/main/img/"

var events = []model.Event{
	{
		Slug:             "taller-derechos-humanos-migrantes",
		Title:            "Taller de derechos humanos para mujeres en movilidad",
		ShortDescription: "Sesión práctica para fortalecer el liderazgo y la defensa de los derechos de mujeres migrantes.",
		Description: []string{
			"Exploraremos herramientas legales y comunitarias que permiten acompañar a mujeres en movilidad humana.",
			"El taller incluye espacios de diálogo seguro, estudio de casos y la construcción de rutas de derivación con organizaciones aliadas.",
			"Al finalizar, las participantes recibirán una guía descargable con materiales pedagógicos y contactos clave.",
		},
		Date:          "2025-05-18",
		FormattedDate: "18 de mayo de 2025",
		Image:         imageBase + "13.jpg",
		Location:      "Casa de la Cultura Ecuatoriana, Quito",
		Tags:          []string{"formación", "derechos humanos"},
	},
	{
		Slug:             "foro-investigacion-social-andina",
		Title:            "Foro de investigación social andina",
		ShortDescription: "Un encuentro con especialistas para debatir desafíos y oportunidades de las comunidades afroandinas.",
		Description: []string{
			"Presentaremos hallazgos de investigaciones recientes sobre movilidad humana, justicia económica y memoria afro.",
			"La jornada combina paneles académicos con laboratorios de co-creación para diseñar recomendaciones de políticas públicas.",
			"El foro culmina con un compromiso colectivo para impulsar proyectos colaborativos de investigación-acción.",
		},
		Date:          "2025-10-02",
		FormattedDate: "2 de octubre de 2025",
		Image:         imageBase + "14.jpg",
		Location:      "Universidad Andina Simón Bolívar, Quito",
		Tags:          []string{"investigación", "política pública"},
	},
	{
		Slug:             "festival-cultural-afrodescendiente",
		Title:            "Festival cultural afrodescendiente",
		ShortDescription: "Celebramos la herencia afroecuatoriana a través de música, gastronomía y emprendimientos comunitarios.",
		Description: []string{
			"Durante tres días, artistas y sabedoras comparten tradiciones orales, danza y saberes culinarios de distintas provincias.",
			"Habrá una feria de emprendimientos que impulsa economías locales lideradas por mujeres afro.",
			"El festival es un espacio para fortalecer el orgullo y la memoria colectiva desde una mirada intergeneracional.",
		},
		Date:          "2025-12-12",
		FormattedDate: "12 de diciembre de 2025",
		Image:         imageBase + "15.jpeg",
		Location:      "Malecón 2000, Guayaquil",
		Tags:          []string{"cultura", "comunidad"},
	},
	{
		Slug:             "conferencia-identidad-cultural",
		Title:            "Conferencia sobre identidad cultural afroecuatoriana",
		ShortDescription: "Diálogos intergeneracionales acerca de identidad, memoria y territorio afrodescendiente.",
		Description: []string{
			"Líderes comunitarios, académicas y artistas comparten aprendizajes para fortalecer la identidad afrodescendiente en la región.",
			"Incluye un círculo de palabra y la presentación de la cartografía colaborativa “Territorios en movimiento”.",
			"Se generará un manifiesto con compromisos para integrar la perspectiva afro en agendas locales.",
		},
		Date:          "2026-01-20",
		FormattedDate: "20 de enero de 2026",
		Image:         imageBase + "16.jpg",
		Location:      "Centro Cultural Metropolitano, Quito",
		Tags:          []string{"identidad", "memoria"},
	},
	{
		Slug:             "curso-liderazgo-comunitario",
		Title:            "Curso intensivo de liderazgo comunitario",
		ShortDescription: "Formación para jóvenes que desean impulsar redes de cuidado y proyectos de incidencia.",
		Description: []string{
			"El programa combina módulos de gestión comunitaria, comunicación estratégica y cuidado colectivo.",
			"Las y los participantes diseñarán un plan de acción acompañado por mentoras de Funteco.",
			"Incluye seguimiento virtual y acceso a la red de voluntariado para implementar iniciativas territoriales.",
		},
		Date:          "2026-03-15",
		FormattedDate: "15 de marzo de 2026",
		Image:         imageBase + "courses-1.jpg",
		Location:      "Centro de Innovación Social, Esmeraldas",
		Tags:          []string{"liderazgo", "juventudes"},
	},
	{
		Slug:             "seminario-derechos-mujeres",
		Title:            "Seminario de derechos de las mujeres afrodescendientes",
		ShortDescription: "Sesiones educativas sobre marcos legales, prevención de violencia y cuidado colectivo.",
		Description: []string{
			"Especialistas en género y justicia racial analizan rutas de atención y políticas de protección.",
			"Se desarrollarán clínicas jurídicas y espacios de sanación liderados por terapeutas comunitarias.",
			"Las conclusiones serán compartidas en un informe abierto para fortalecer la incidencia en territorio.",
		},
		Date:          "2026-05-08",
		FormattedDate: "8 de mayo de 2026",
		Image:         imageBase + "12.jpg",
		Location:      "Centro Cultural de Ibarra, Ibarra",
		Tags:          []string{"género", "justicia racial"},
	},
	{
		Slug:             "feria-emprendimientos-afro",
		Title:            "Feria de emprendimientos afro",
		ShortDescription: "Exhibición de productos y servicios creados por mujeres afrodescendientes.",
		Description: []string{
			"La feria conecta emprendimientos con redes de comercialización éticas y responsables.",
			"Incluye rondas de negocios, mentorías colectivas y espacios de networking con empresas aliadas.",
			"Finalizaremos con un desfile de moda ancestral y una presentación gastronómica colaborativa.",
		},
		Date:          "2026-07-24",
		FormattedDate: "24 de julio de 2026",
		Image:         imageBase + "14.jpg",
		Location:      "Parque La Carolina, Quito",
		Tags:          []string{"emprendimiento", "economía solidaria"},
	},
	{
		Slug:             "festival-musica-afro",
		Title:            "Festival de música afro contemporánea",
		ShortDescription: "Escenario para artistas que fusionan ritmos afrolatinos, electrónicos y spoken word.",
		Description: []string{
			"El festival se enfoca en artistas emergentes que narran historias de migración y resistencia.",
			"Habrá laboratorios sonoros para niñas, niños y adolescentes, además de conversatorios con productoras independientes.",
			"Cerramos con un concierto colectivo que celebra la creatividad afro en movimiento.",
		},
		Date:          "2026-11-19",
		FormattedDate: "19 de noviembre de 2026",
		Image:         imageBase + "15.jpeg",
		Location:      "Teatro Sánchez Aguilar, Samborondón",
		Tags:          []string{"música", "juventudes"},
	},
}
